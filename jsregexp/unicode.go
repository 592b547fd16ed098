package jsregexp

import (
	"sort"
	"unicode"
)

// generalCategories maps every accepted General_Category value spelling to
// its short name.
var generalCategories = map[string]string{}

func init() {
	for _, gc := range [][]string{
		{"C", "Other"},
		{"Cc", "Control", "cntrl"},
		{"Cf", "Format"},
		{"Cn", "Unassigned"},
		{"Co", "Private_Use"},
		{"Cs", "Surrogate"},
		{"L", "Letter"},
		{"LC", "Cased_Letter"},
		{"Ll", "Lowercase_Letter"},
		{"Lm", "Modifier_Letter"},
		{"Lo", "Other_Letter"},
		{"Lt", "Titlecase_Letter"},
		{"Lu", "Uppercase_Letter"},
		{"M", "Mark", "Combining_Mark"},
		{"Mc", "Spacing_Mark"},
		{"Me", "Enclosing_Mark"},
		{"Mn", "Nonspacing_Mark"},
		{"N", "Number"},
		{"Nd", "Decimal_Number", "digit"},
		{"Nl", "Letter_Number"},
		{"No", "Other_Number"},
		{"P", "Punctuation", "punct"},
		{"Pc", "Connector_Punctuation"},
		{"Pd", "Dash_Punctuation"},
		{"Pe", "Close_Punctuation"},
		{"Pf", "Final_Punctuation"},
		{"Pi", "Initial_Punctuation"},
		{"Po", "Other_Punctuation"},
		{"Ps", "Open_Punctuation"},
		{"S", "Symbol"},
		{"Sc", "Currency_Symbol"},
		{"Sk", "Modifier_Symbol"},
		{"Sm", "Math_Symbol"},
		{"So", "Other_Symbol"},
		{"Z", "Separator"},
		{"Zl", "Line_Separator"},
		{"Zp", "Paragraph_Separator"},
		{"Zs", "Space_Separator"},
	} {
		for _, name := range gc {
			generalCategories[name] = gc[0]
		}
	}
}

// scriptAliases maps ISO 15924 codes to the long script names used as keys
// of unicode.Scripts.
var scriptAliases = map[string]string{
	"Adlm": "Adlam", "Aghb": "Caucasian_Albanian", "Ahom": "Ahom",
	"Arab": "Arabic", "Armi": "Imperial_Aramaic", "Armn": "Armenian",
	"Avst": "Avestan", "Bali": "Balinese", "Bamu": "Bamum",
	"Bass": "Bassa_Vah", "Batk": "Batak", "Beng": "Bengali",
	"Bhks": "Bhaiksuki", "Bopo": "Bopomofo", "Brah": "Brahmi",
	"Brai": "Braille", "Bugi": "Buginese", "Buhd": "Buhid",
	"Cakm": "Chakma", "Cans": "Canadian_Aboriginal", "Cari": "Carian",
	"Cher": "Cherokee", "Copt": "Coptic", "Qaac": "Coptic",
	"Cprt": "Cypriot", "Cyrl": "Cyrillic", "Deva": "Devanagari",
	"Dsrt": "Deseret", "Dupl": "Duployan", "Egyp": "Egyptian_Hieroglyphs",
	"Elba": "Elbasan", "Ethi": "Ethiopic", "Geor": "Georgian",
	"Glag": "Glagolitic", "Goth": "Gothic", "Gran": "Grantha",
	"Grek": "Greek", "Gujr": "Gujarati", "Guru": "Gurmukhi",
	"Hang": "Hangul", "Hani": "Han", "Hano": "Hanunoo",
	"Hebr": "Hebrew", "Hira": "Hiragana", "Hmng": "Pahawh_Hmong",
	"Ital": "Old_Italic", "Java": "Javanese", "Kali": "Kayah_Li",
	"Kana": "Katakana", "Khar": "Kharoshthi", "Khmr": "Khmer",
	"Khoj": "Khojki", "Knda": "Kannada", "Kthi": "Kaithi",
	"Lana": "Tai_Tham", "Laoo": "Lao", "Latn": "Latin",
	"Lepc": "Lepcha", "Limb": "Limbu", "Lina": "Linear_A",
	"Linb": "Linear_B", "Lyci": "Lycian", "Lydi": "Lydian",
	"Mand": "Mandaic", "Mlym": "Malayalam", "Mong": "Mongolian",
	"Mtei": "Meetei_Mayek", "Mymr": "Myanmar", "Nkoo": "Nko",
	"Ogam": "Ogham", "Olck": "Ol_Chiki", "Orkh": "Old_Turkic",
	"Orya": "Oriya", "Osma": "Osmanya", "Phag": "Phags_Pa",
	"Phnx": "Phoenician", "Rjng": "Rejang", "Runr": "Runic",
	"Samr": "Samaritan", "Sarb": "Old_South_Arabian", "Saur": "Saurashtra",
	"Shaw": "Shavian", "Sinh": "Sinhala", "Sund": "Sundanese",
	"Sylo": "Syloti_Nagri", "Syrc": "Syriac", "Tagb": "Tagbanwa",
	"Tale": "Tai_Le", "Talu": "New_Tai_Lue", "Taml": "Tamil",
	"Tavt": "Tai_Viet", "Telu": "Telugu", "Tfng": "Tifinagh",
	"Tglg": "Tagalog", "Thaa": "Thaana", "Thai": "Thai",
	"Tibt": "Tibetan", "Ugar": "Ugaritic", "Vaii": "Vai",
	"Xpeo": "Old_Persian", "Xsux": "Cuneiform", "Yiii": "Yi",
	"Zinh": "Inherited", "Qaai": "Inherited", "Zyyy": "Common",
	"Zzzz": "Unknown",
}

// binaryProperties maps the accepted spellings of the binary Unicode
// properties of ECMA-262 to their long names.
var binaryProperties = map[string]string{}

func init() {
	for _, p := range [][]string{
		{"ASCII"}, {"ASCII_Hex_Digit", "AHex"}, {"Alphabetic", "Alpha"},
		{"Any"}, {"Assigned"}, {"Bidi_Control", "Bidi_C"},
		{"Bidi_Mirrored", "Bidi_M"}, {"Case_Ignorable", "CI"}, {"Cased"},
		{"Changes_When_Casefolded", "CWCF"}, {"Changes_When_Casemapped", "CWCM"},
		{"Changes_When_Lowercased", "CWL"}, {"Changes_When_NFKC_Casefolded", "CWKCF"},
		{"Changes_When_Titlecased", "CWT"}, {"Changes_When_Uppercased", "CWU"},
		{"Dash"}, {"Default_Ignorable_Code_Point", "DI"}, {"Deprecated", "Dep"},
		{"Diacritic", "Dia"}, {"Emoji"}, {"Emoji_Component", "EComp"},
		{"Emoji_Modifier", "EMod"}, {"Emoji_Modifier_Base", "EBase"},
		{"Emoji_Presentation", "EPres"}, {"Extended_Pictographic", "ExtPict"},
		{"Extender", "Ext"}, {"Grapheme_Base", "Gr_Base"}, {"Grapheme_Extend", "Gr_Ext"},
		{"Hex_Digit", "Hex"}, {"IDS_Binary_Operator", "IDSB"},
		{"IDS_Trinary_Operator", "IDST"}, {"ID_Continue", "IDC"}, {"ID_Start", "IDS"},
		{"Ideographic", "Ideo"}, {"Join_Control", "Join_C"},
		{"Logical_Order_Exception", "LOE"}, {"Lowercase", "Lower"}, {"Math"},
		{"Noncharacter_Code_Point", "NChar"}, {"Pattern_Syntax", "Pat_Syn"},
		{"Pattern_White_Space", "Pat_WS"}, {"Quotation_Mark", "QMark"},
		{"Radical"}, {"Regional_Indicator", "RI"}, {"Sentence_Terminal", "STerm"},
		{"Soft_Dotted", "SD"}, {"Terminal_Punctuation", "Term"},
		{"Unified_Ideograph", "UIdeo"}, {"Uppercase", "Upper"},
		{"Variation_Selector", "VS"}, {"White_Space", "space"},
		{"XID_Continue", "XIDC"}, {"XID_Start", "XIDS"},
	} {
		for _, name := range p {
			binaryProperties[name] = p[0]
		}
	}
}

// stringProperties are the properties of strings allowed in v mode.
var stringProperties = map[string]bool{
	"Basic_Emoji":                 true,
	"Emoji_Keycap_Sequence":       true,
	"RGI_Emoji_Modifier_Sequence": true,
	"RGI_Emoji_Flag_Sequence":     true,
	"RGI_Emoji_Tag_Sequence":      true,
	"RGI_Emoji_ZWJ_Sequence":      true,
	"RGI_Emoji":                   true,
}

func lookupScript(name string) (string, bool) {
	if alias, ok := scriptAliases[name]; ok {
		name = alias
	}
	if name == "Unknown" {
		return name, true
	}
	_, ok := unicode.Scripts[name]
	return name, ok
}

// resolveProperty validates the body of \p{...}: either name=value or a lone
// name, which is a General_Category value, a binary property or (v mode) a
// property of strings.
func resolveProperty(name, value string, hasValue, unicodeSets bool) (*Property, string) {
	if hasValue {
		switch name {
		case "General_Category", "gc":
			if short, ok := generalCategories[value]; ok {
				return &Property{Name: "General_Category", Value: short}, ""
			}
		case "Script", "sc", "Script_Extensions", "scx":
			canonical := "Script"
			if name == "Script_Extensions" || name == "scx" {
				canonical = "Script_Extensions"
			}
			if long, ok := lookupScript(value); ok {
				return &Property{Name: canonical, Value: long}, ""
			}
		default:
			return nil, "Invalid property name"
		}
		return nil, "Invalid property value"
	}
	if short, ok := generalCategories[name]; ok {
		return &Property{Name: "General_Category", Value: short}, ""
	}
	if long, ok := binaryProperties[name]; ok {
		return &Property{Name: long}, ""
	}
	if unicodeSets && stringProperties[name] {
		return &Property{Name: name, Strings: true}, ""
	}
	return nil, "Invalid property name"
}

// runeRange is an inclusive code point interval.
type runeRange struct {
	lo, hi rune
}

// jsSpace is the set matched by \s.
var jsSpace = []runeRange{
	{0x09, 0x0d}, {0x20, 0x20}, {0xa0, 0xa0}, {0x1680, 0x1680},
	{0x2000, 0x200a}, {0x2028, 0x2029}, {0x202f, 0x202f}, {0x205f, 0x205f},
	{0x3000, 0x3000}, {0xfeff, 0xfeff},
}

var lineTerminators = []runeRange{
	{0x0a, 0x0a}, {0x0d, 0x0d}, {0x2028, 0x2029},
}

func tableRanges(rt *unicode.RangeTable) []runeRange {
	var out []runeRange
	for _, r := range rt.R16 {
		out = appendStrided(out, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range rt.R32 {
		out = appendStrided(out, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	return normalizeRanges(out)
}

func appendStrided(out []runeRange, lo, hi, stride rune) []runeRange {
	if stride == 1 {
		return append(out, runeRange{lo, hi})
	}
	for r := lo; r <= hi; r += stride {
		out = append(out, runeRange{r, r})
	}
	return out
}

func normalizeRanges(rs []runeRange) []runeRange {
	sort.Slice(rs, func(i, j int) bool { return rs[i].lo < rs[j].lo })
	var out []runeRange
	for _, r := range rs {
		if n := len(out); n > 0 && r.lo <= out[n-1].hi+1 {
			if r.hi > out[n-1].hi {
				out[n-1].hi = r.hi
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// complementRanges returns the code points in [0, MaxRune] not covered by
// rs, which must be normalized.
func complementRanges(rs []runeRange) []runeRange {
	var out []runeRange
	next := rune(0)
	for _, r := range rs {
		if r.lo > next {
			out = append(out, runeRange{next, r.lo - 1})
		}
		next = r.hi + 1
	}
	if next <= unicode.MaxRune {
		out = append(out, runeRange{next, unicode.MaxRune})
	}
	return out
}

// propertyRanges returns the explicit code point set of p when the host
// Unicode tables know it.
func propertyRanges(p *Property) ([]runeRange, bool) {
	var rs []runeRange
	switch p.Name {
	case "General_Category":
		if p.Value == "LC" {
			rs = normalizeRanges(append(append(tableRanges(unicode.Lu), tableRanges(unicode.Ll)...), tableRanges(unicode.Lt)...))
			break
		}
		rt, ok := unicode.Categories[p.Value]
		if !ok {
			return nil, false
		}
		rs = tableRanges(rt)
	case "Script":
		rt, ok := unicode.Scripts[p.Value]
		if !ok {
			return nil, false
		}
		rs = tableRanges(rt)
	case "ASCII":
		rs = []runeRange{{0, 0x7f}}
	case "Any":
		rs = []runeRange{{0, unicode.MaxRune}}
	default:
		rt, ok := unicode.Properties[p.Name]
		if !ok {
			return nil, false
		}
		rs = tableRanges(rt)
	}
	if p.Negate {
		rs = complementRanges(rs)
	}
	return rs, true
}
