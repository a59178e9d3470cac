// package emotion defines the fixed emotion code table shared with the mood backend.
package emotion

import "strings"

// NeutralID is the fallback emotion code used for unknown ids and names.
const NeutralID = 46

// Code bounds for the emotion table. The table is fixed and must match the
// backend's code space exactly for round-trip compatibility.
const (
	MinID = 1
	MaxID = 95
)

// Entry is one row of the emotion code table.
type Entry struct {
	ID    int    // Code id in [MinID, MaxID]
	Name  string // Canonical kebab-case name, lowercase
	Glyph string // Display glyph
}

// table holds all entries ordered by id; entry for id n is table[n-1].
var table = []Entry{
	{1, "grinning-face", "😀"},
	{2, "grinning-face-with-big-eyes", "😃"},
	{3, "grinning-face-with-smiling-eyes", "😄"},
	{4, "beaming-face-with-smiling-eyes", "😁"},
	{5, "grinning-squinting-face", "😆"},
	{6, "grinning-face-with-sweat", "😅"},
	{7, "rolling-on-the-floor-laughing", "🤣"},
	{8, "face-with-tears-of-joy", "😂"},
	{9, "slightly-smiling-face", "🙂"},
	{10, "upside-down-face", "🙃"},
	{11, "winking-face", "😉"},
	{12, "smiling-face-with-smiling-eyes", "😊"},
	{13, "smiling-face-with-halo", "😇"},
	{14, "smiling-face-with-hearts", "🥰"},
	{15, "smiling-face-with-heart-eyes", "😍"},
	{16, "star-struck", "🤩"},
	{17, "face-blowing-a-kiss", "😘"},
	{18, "kissing-face", "😗"},
	{19, "smiling-face", "☺️"},
	{20, "kissing-face-with-closed-eyes", "😚"},
	{21, "kissing-face-with-smiling-eyes", "😙"},
	{22, "smiling-face-with-tear", "🥲"},
	{23, "face-savoring-food", "😋"},
	{24, "face-with-tongue", "😛"},
	{25, "winking-face-with-tongue", "😜"},
	{26, "zany-face", "🤪"},
	{27, "squinting-face-with-tongue", "😝"},
	{28, "money-mouth-face", "🤑"},
	{29, "smiling-face-with-open-hands", "🤗"},
	{30, "face-with-hand-over-mouth", "🤭"},
	{31, "shushing-face", "🤫"},
	{32, "thinking-face", "🤔"},
	{33, "zipper-mouth-face", "🤐"},
	{34, "face-with-raised-eyebrow", "🤨"},
	{35, "expressionless-face", "😑"},
	{36, "face-without-mouth", "😶"},
	{37, "face-in-clouds", "😶‍🌫️"},
	{38, "smirking-face", "😏"},
	{39, "unamused-face", "😒"},
	{40, "face-with-rolling-eyes", "🙄"},
	{41, "grimacing-face", "😬"},
	{42, "face-exhaling", "😮‍💨"},
	{43, "lying-face", "🤥"},
	{44, "relieved-face", "😌"},
	{45, "pensive-face", "😔"},
	{46, "neutral-face", "😐"},
	{47, "sleepy-face", "😪"},
	{48, "drooling-face", "🤤"},
	{49, "sleeping-face", "😴"},
	{50, "face-with-medical-mask", "😷"},
	{51, "face-with-thermometer", "🤒"},
	{52, "face-with-head-bandage", "🤕"},
	{53, "nauseated-face", "🤢"},
	{54, "face-vomiting", "🤮"},
	{55, "sneezing-face", "🤧"},
	{56, "hot-face", "🥵"},
	{57, "cold-face", "🥶"},
	{58, "woozy-face", "🥴"},
	{59, "face-with-crossed-out-eyes", "😵"},
	{60, "face-with-spiral-eyes", "😵‍💫"},
	{61, "exploding-head", "🤯"},
	{62, "cowboy-hat-face", "🤠"},
	{63, "partying-face", "🥳"},
	{64, "disguised-face", "🥸"},
	{65, "smiling-face-with-sunglasses", "😎"},
	{66, "nerd-face", "🤓"},
	{67, "face-with-monocle", "🧐"},
	{68, "confused-face", "😕"},
	{69, "face-with-diagonal-mouth", "🫤"},
	{70, "worried-face", "😟"},
	{71, "slightly-frowning-face", "🙁"},
	{72, "frowning-face", "☹️"},
	{73, "face-with-open-mouth", "😮"},
	{74, "hushed-face", "😯"},
	{75, "astonished-face", "😲"},
	{76, "flushed-face", "😳"},
	{77, "pleading-face", "🥺"},
	{78, "face-holding-back-tears", "🥹"},
	{79, "frowning-face-with-open-mouth", "😦"},
	{80, "anguished-face", "😧"},
	{81, "fearful-face", "😨"},
	{82, "anxious-face-with-sweat", "😰"},
	{83, "sad-but-relieved-face", "😥"},
	{84, "crying-face", "😢"},
	{85, "loudly-crying-face", "😭"},
	{86, "face-screaming-in-fear", "😱"},
	{87, "confounded-face", "😖"},
	{88, "persevering-face", "😣"},
	{89, "disappointed-face", "😞"},
	{90, "downcast-face-with-sweat", "😓"},
	{91, "weary-face", "😩"},
	{92, "tired-face", "😫"},
	{93, "yawning-face", "🥱"},
	{94, "face-with-steam-from-nose", "😤"},
	{95, "enraged-face", "😡"},
}

// byName is the case-insensitive reverse index. Names are keyed lowercase,
// which collapses the casing variants seen in older clients.
var byName = func() map[string]int {
	m := make(map[string]int, len(table))
	for _, e := range table {
		m[strings.ToLower(e.Name)] = e.ID
	}
	return m
}()

// Lookup returns the entry for id, or the neutral entry when id is out of range.
func Lookup(id int) Entry {
	if id < MinID || id > MaxID {
		return table[NeutralID-1]
	}
	return table[id-1]
}

// GlyphFor returns the display glyph for id, defaulting to the neutral glyph.
func GlyphFor(id int) string {
	return Lookup(id).Glyph
}

// NameFor returns the canonical name for id, defaulting to "neutral-face".
func NameFor(id int) string {
	return Lookup(id).Name
}

// IDFor returns the code id for a name, matched case-insensitively.
// Unknown names resolve to [NeutralID].
func IDFor(name string) int {
	if id, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return id
	}
	return NeutralID
}

// Entries returns a copy of the full table in id order.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}
