package str

// Common typographic symbols.
const (
	Nbsp             = "\u00a0"
	Copyright        = "©"
	Registered       = "®"
	TradeMark        = "™"
	Bullet           = "•"
	TriangularBullet = "‣"
	HyphenBullet     = "⁃"
	ReferenceMark    = "※"
	Ellipsis         = "…"
	Feminine         = "ª"
	Sect             = "§"
	Check            = "✓"
	HeavyCheck       = "✔"
	Ballot           = "✕"
	HeavyBallot      = "✖"
	Cent             = "¢"
	Dollar           = "$"
	Pound            = "£"
	Yen              = "¥"
	Euro             = "€"
)

// Symbol returns the one-rune string for a Unicode code point.
func Symbol(code rune) string { return string(code) }
