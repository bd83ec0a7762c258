package reflectx_test

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hasbyte1/go-extensions/reflectx"
)

type testClass struct {
	Test1 string
	Test2 string `prop:",readonly"`
	Test3 *int
}

type audit struct {
	CreatedBy string
	Version   int
}

type document struct {
	audit
	Title    string  `prop:"title"`
	Secret   string  `prop:"-"`
	Password string  `prop:",writeonly"`
	Score    float64 `prop:"score,readonly"`
	internal int
}

func TestWrapperReadsProperties(t *testing.T) {
	three := 42
	expected := testClass{Test1: "one", Test2: "two", Test3: &three}

	for name, source := range map[string]any{"value": expected, "pointer": &expected} {
		t.Run(name, func(t *testing.T) {
			w := reflectx.Wrap(source)
			assert.Equal(t, "one", w.Get("Test1"))
			assert.Equal(t, "two", reflectx.GetOrDefault(w, "Test2", ""))
			assert.Equal(t, &three, reflectx.GetOrDefault[*int](w, "Test3", nil))

			assert.Nil(t, w.Get("Test4"))
			assert.Equal(t, "", reflectx.GetOrDefault(w, "Test4", ""))
			assert.Equal(t, "fallback", reflectx.GetOrDefault(w, "Test4", "fallback"))
			assert.True(t, w.Lookup("Test4").IsAbsent())
		})
	}
}

func TestWrapperNilPropertyValue(t *testing.T) {
	w := reflectx.Wrap(&testClass{})

	assert.True(t, w.Lookup("Test3").IsPresent(), "nil pointer field is still readable")
	assert.Nil(t, reflectx.GetOrDefault[*int](w, "Test3", new(int)))
}

func TestWrapperSet(t *testing.T) {
	doc := &document{}
	w := reflectx.Wrap(doc)

	assert.True(t, w.Set("title", "Report"))
	assert.Equal(t, "Report", doc.Title)

	assert.True(t, w.Set("CreatedBy", "denis"), "promoted field")
	assert.Equal(t, "denis", doc.CreatedBy)

	assert.True(t, w.Set("Version", int64(3)), "numeric conversion")
	assert.Equal(t, 3, doc.Version)

	assert.True(t, w.Set("title", nil), "nil stores zero value")
	assert.Empty(t, doc.Title)

	assert.False(t, w.Set("score", 1.5), "read-only")
	assert.False(t, w.Set("Version", "three"), "incompatible value")
	assert.False(t, w.Set("Missing", 1), "unknown")
	assert.Equal(t, 3, doc.Version)
}

type counters struct {
	Count int8
	Age   int
	Size  uint16
	Ratio float32
}

func TestWrapperSetRejectsLossyNumbers(t *testing.T) {
	c := &counters{Count: 1, Age: 2, Size: 3, Ratio: 4}
	w := reflectx.Wrap(c)

	assert.False(t, w.Set("Count", 300), "overflows int8")
	assert.False(t, w.Set("Age", 3.9), "fractional")
	assert.False(t, w.Set("Size", -1), "negative into unsigned")
	assert.False(t, w.Set("Size", uint64(70000)))
	assert.False(t, w.Set("Ratio", 1e40), "overflows float32")
	assert.False(t, w.Set("Age", uint64(1<<63)))
	assert.Equal(t, counters{Count: 1, Age: 2, Size: 3, Ratio: 4}, *c)

	assert.True(t, w.Set("Count", 100))
	assert.True(t, w.Set("Age", 4.0), "integral float")
	assert.True(t, w.Set("Size", int64(65535)))
	assert.True(t, w.Set("Ratio", 0.5))
	assert.Equal(t, counters{Count: 100, Age: 4, Size: 65535, Ratio: 0.5}, *c)

	p, ok := reflectx.PropertyOf(reflect.TypeFor[counters](), "Count")
	require.True(t, ok)
	assert.ErrorIs(t, p.Set(c, -129), reflectx.ErrTypeMismatch)
	assert.Equal(t, int8(100), c.Count)
}

func TestWrapperSetByValueIsNoop(t *testing.T) {
	doc := document{Title: "a"}
	w := reflectx.Wrap(doc)

	assert.False(t, w.Set("title", "b"))
	assert.Equal(t, "a", w.Get("title"))
}

func TestWrapperTags(t *testing.T) {
	w := reflectx.Wrap(&document{Password: "hunter2", Secret: "s", Score: 9})

	assert.Equal(t, []string{"CreatedBy", "Version", "title", "Password", "score"}, w.Names())
	assert.False(t, w.Has("Secret"))
	assert.False(t, w.Has("internal"))
	assert.False(t, w.Has("audit"))
	assert.True(t, w.Has("Password"))

	assert.Nil(t, w.Get("Password"), "write-only")
	assert.True(t, w.Set("Password", "changed"))
	assert.Equal(t, 9.0, w.Get("score"))
}

func TestWrapNilAndNonStruct(t *testing.T) {
	for name, source := range map[string]any{
		"nil":         nil,
		"nil pointer": (*document)(nil),
		"int":         7,
		"map":         map[string]int{"a": 1},
	} {
		t.Run(name, func(t *testing.T) {
			w := reflectx.Wrap(source)
			assert.Nil(t, w.Get("title"))
			assert.False(t, w.Set("title", "x"))
			assert.Equal(t, source, w.Source())
		})
	}

	w := reflectx.Wrap((*document)(nil))
	assert.True(t, w.Has("title"), "nil pointer still knows its type")
}

// settings serves its properties without reflection.
type settings struct {
	values map[string]any
}

func (s *settings) PropertyNames() []string { return []string{"Theme", "Locale"} }

func (s *settings) GetProperty(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

func (s *settings) SetProperty(name string, value any) bool {
	if name != "Theme" {
		return false
	}
	s.values[name] = value
	return true
}

func TestWrapperAccessor(t *testing.T) {
	s := &settings{values: map[string]any{"Theme": "dark", "Locale": "en"}}
	w := reflectx.Wrap(s)

	assert.Equal(t, []string{"Theme", "Locale"}, w.Names())
	assert.Nil(t, w.Properties())
	assert.True(t, w.Has("Locale"))
	assert.Equal(t, "dark", w.Get("Theme"))
	assert.True(t, w.Set("Theme", "light"))
	assert.False(t, w.Set("Locale", "fr"))
	assert.Equal(t, "light", s.values["Theme"])
	assert.Nil(t, w.Get("Missing"))
}

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	reflectx.SetLogger(zap.New(core))
	t.Cleanup(func() { reflectx.SetLogger(nil) })
	return logs
}

func TestAccessorTableBuiltOnce(t *testing.T) {
	type invoice struct {
		Number string
		Lines  int
	}
	logs := observe(t)

	for i := range 5 {
		w := reflectx.Wrap(&invoice{Number: "INV", Lines: i})
		assert.Equal(t, i, w.Get("Lines"))
	}
	reflectx.PropertiesFor[invoice]()

	built := logs.FilterMessage("accessor table built").All()
	require.Len(t, built, 1)
	assert.Equal(t, int64(2), built[0].ContextMap()["properties"])
}

func TestAccessorTableConcurrentFirstUse(t *testing.T) {
	type shipment struct {
		Carrier string
		Weight  float64
	}
	logs := observe(t)

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := &shipment{}
			w := reflectx.Wrap(s)
			if w.Set("Weight", float64(i)) {
				_ = w.Get("Weight")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, logs.FilterMessage("accessor table built").Len())
}

func TestPropertyStronglyTyped(t *testing.T) {
	p, ok := reflectx.PropertyOf(reflect.TypeFor[*document](), "score")
	require.True(t, ok)
	assert.True(t, p.CanGet)
	assert.False(t, p.CanSet)
	assert.Equal(t, "Score", p.Field.Name)

	doc := &document{Score: 4.5}
	got, err := reflectx.GetAs[float64](p, doc)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got)

	err = p.Set(doc, 1.0)
	assert.True(t, errors.Is(err, reflectx.ErrNotSupported))

	_, err = reflectx.GetAs[string](p, doc)
	assert.ErrorIs(t, err, reflectx.ErrTypeMismatch)

	_, err = p.Get(testClass{})
	assert.ErrorIs(t, err, reflectx.ErrTypeMismatch)

	_, err = p.Get((*document)(nil))
	assert.ErrorIs(t, err, reflectx.ErrNilInstance)

	pw, ok := reflectx.PropertyOf(reflect.TypeFor[document](), "Password")
	require.True(t, ok)
	_, err = pw.Get(doc)
	assert.ErrorIs(t, err, reflectx.ErrNotSupported)
	require.NoError(t, pw.Set(doc, "secret"))
	assert.Equal(t, "secret", doc.Password)

	pt, _ := reflectx.PropertyOf(reflect.TypeFor[document](), "title")
	assert.ErrorIs(t, pt.Set(*doc, "x"), reflectx.ErrNotAddressable)
	assert.ErrorIs(t, pt.Set(doc, 12), reflectx.ErrTypeMismatch)

	_, ok = reflectx.PropertyOf(reflect.TypeFor[document](), "Secret")
	assert.False(t, ok)
}

func TestPropertiesOf(t *testing.T) {
	props := reflectx.PropertiesFor[testClass]()
	require.Len(t, props, 3)
	assert.Equal(t, "Test1", props[0].Name)
	assert.Equal(t, reflect.TypeFor[*int](), props[2].Type())
	assert.Equal(t, reflect.TypeFor[testClass](), props[2].Owner())

	assert.Empty(t, reflectx.PropertiesFor[int]())
	assert.Nil(t, reflectx.PropertiesOf(nil))
}
