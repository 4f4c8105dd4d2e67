package theme

// ColorRole is a semantic UI purpose that every theme assigns a color to.
type ColorRole int

const (
	ColorDirectory ColorRole = iota
	ColorCommand
	ColorTab
	ColorSuccess
	ColorFail
	ColorFocused
	ColorUnfocused
	ColorBackground
	ColorBorder
	ColorText

	colorRoleCount
)

// IconRole is a semantic UI purpose that every theme assigns a prefix string to.
type IconRole int

const (
	IconDirectory IconRole = iota
	IconCommand
	IconTab
	IconMultiSelect

	iconRoleCount
)

var colorRoleNames = [colorRoleCount]string{
	"directory", "command", "tab", "success", "fail",
	"focused", "unfocused", "background", "border", "text",
}

var iconRoleNames = [iconRoleCount]string{"directory", "command", "tab", "multi-select"}

// ColorRoles lists every color role.
func ColorRoles() []ColorRole {
	roles := make([]ColorRole, colorRoleCount)
	for i := range roles {
		roles[i] = ColorRole(i)
	}
	return roles
}

// IconRoles lists every icon role.
func IconRoles() []IconRole {
	roles := make([]IconRole, iconRoleCount)
	for i := range roles {
		roles[i] = IconRole(i)
	}
	return roles
}

func (r ColorRole) String() string {
	if r < 0 || r >= colorRoleCount {
		return "unknown"
	}
	return colorRoleNames[r]
}

func (r IconRole) String() string {
	if r < 0 || r >= iconRoleCount {
		return "unknown"
	}
	return iconRoleNames[r]
}

// appearance is one row of the theme table. colors is indexed by ColorRole and
// icons by IconRole, so a new role grows the arrays for every theme at once.
type appearance struct {
	name   string
	slug   string
	colors [colorRoleCount]Color
	icons  [iconRoleCount]string
}

var appearances = [...]appearance{
	Default: {
		name: "Default",
		slug: "default",
		colors: [colorRoleCount]Color{
			ColorDirectory:  Blue,
			ColorCommand:    RGB(204, 224, 208),
			ColorTab:        RGB(255, 255, 85),
			ColorSuccess:    RGB(199, 55, 44),
			ColorFail:       RGB(5, 255, 55),
			ColorFocused:    LightBlue,
			ColorUnfocused:  Gray,
			ColorBackground: Reset,
			ColorBorder:     Reset,
			ColorText:       Reset,
		},
	},
	Compatible: {
		name: "Compatible",
		slug: "compatible",
		colors: [colorRoleCount]Color{
			ColorDirectory:  Blue,
			ColorCommand:    LightGreen,
			ColorTab:        Yellow,
			ColorSuccess:    Green,
			ColorFail:       Red,
			ColorFocused:    LightBlue,
			ColorUnfocused:  Gray,
			ColorBackground: Reset,
			ColorBorder:     Reset,
			ColorText:       Reset,
		},
		icons: [iconRoleCount]string{
			IconDirectory:   "[DIR]",
			IconCommand:     "[CMD]",
			IconTab:         ">> ",
			IconMultiSelect: "*",
		},
	},
	CatppuccinMocha: {
		name: "CatppuccinMocha",
		slug: "catppuccin-mocha",
		colors: [colorRoleCount]Color{
			ColorDirectory:  RGB(137, 180, 250),
			ColorCommand:    RGB(166, 227, 161),
			ColorTab:        RGB(249, 226, 175),
			ColorSuccess:    RGB(166, 227, 161),
			ColorFail:       RGB(243, 139, 168),
			ColorFocused:    RGB(137, 220, 235),
			ColorUnfocused:  RGB(108, 112, 134),
			ColorBackground: RGB(30, 30, 46),
			ColorBorder:     RGB(88, 91, 112),
			ColorText:       RGB(205, 214, 244),
		},
	},
	Nord: {
		name: "Nord",
		slug: "nord",
		colors: [colorRoleCount]Color{
			ColorDirectory:  RGB(143, 188, 187),
			ColorCommand:    RGB(163, 190, 140),
			ColorTab:        RGB(235, 203, 139),
			ColorSuccess:    RGB(163, 190, 140),
			ColorFail:       RGB(191, 97, 106),
			ColorFocused:    RGB(136, 192, 208),
			ColorUnfocused:  RGB(76, 86, 106),
			ColorBackground: RGB(46, 52, 64),
			ColorBorder:     RGB(76, 86, 106),
			ColorText:       RGB(216, 222, 233),
		},
	},
	Gruvbox: {
		name: "Gruvbox",
		slug: "gruvbox",
		colors: [colorRoleCount]Color{
			ColorDirectory:  RGB(184, 187, 38),
			ColorCommand:    RGB(215, 153, 33),
			ColorTab:        RGB(250, 189, 47),
			ColorSuccess:    RGB(152, 151, 26),
			ColorFail:       RGB(204, 36, 29),
			ColorFocused:    RGB(69, 133, 136),
			ColorUnfocused:  RGB(146, 131, 116),
			ColorBackground: RGB(40, 40, 40),
			ColorBorder:     RGB(124, 111, 100),
			ColorText:       RGB(235, 219, 178),
		},
	},
	Solarized: {
		name: "Solarized",
		slug: "solarized",
		colors: [colorRoleCount]Color{
			ColorDirectory:  RGB(38, 139, 210),
			ColorCommand:    RGB(133, 153, 0),
			ColorTab:        RGB(181, 137, 0),
			ColorSuccess:    RGB(133, 153, 0),
			ColorFail:       RGB(220, 50, 47),
			ColorFocused:    RGB(42, 161, 152),
			ColorUnfocused:  RGB(88, 110, 117),
			ColorBackground: RGB(0, 43, 54),
			ColorBorder:     RGB(7, 54, 66),
			ColorText:       RGB(131, 148, 150),
		},
	},
}

// The table must have exactly one row per ID.
var (
	_ [len(appearances) - Count]struct{}
	_ [Count - len(appearances)]struct{}
)

func lookup(id ID) *appearance {
	if !id.Valid() {
		id = Default
	}
	return &appearances[id]
}

// ColorFor returns the color id assigns to role. Invalid IDs resolve as Default
// and unknown roles as Reset.
func ColorFor(id ID, role ColorRole) Color {
	if role < 0 || role >= colorRoleCount {
		return Reset
	}
	return lookup(id).colors[role]
}

// IconFor returns the prefix id assigns to role. Only Compatible has non-empty
// icons; callers can prepend the result unconditionally.
func IconFor(id ID, role IconRole) string {
	if role < 0 || role >= iconRoleCount {
		return ""
	}
	return lookup(id).icons[role]
}

func (id ID) DirColor() Color        { return ColorFor(id, ColorDirectory) }
func (id ID) CmdColor() Color        { return ColorFor(id, ColorCommand) }
func (id ID) TabColor() Color        { return ColorFor(id, ColorTab) }
func (id ID) SuccessColor() Color    { return ColorFor(id, ColorSuccess) }
func (id ID) FailColor() Color       { return ColorFor(id, ColorFail) }
func (id ID) FocusedColor() Color    { return ColorFor(id, ColorFocused) }
func (id ID) UnfocusedColor() Color  { return ColorFor(id, ColorUnfocused) }
func (id ID) BackgroundColor() Color { return ColorFor(id, ColorBackground) }
func (id ID) BorderColor() Color     { return ColorFor(id, ColorBorder) }
func (id ID) TextColor() Color       { return ColorFor(id, ColorText) }

func (id ID) DirIcon() string         { return IconFor(id, IconDirectory) }
func (id ID) CmdIcon() string         { return IconFor(id, IconCommand) }
func (id ID) TabIcon() string         { return IconFor(id, IconTab) }
func (id ID) MultiSelectIcon() string { return IconFor(id, IconMultiSelect) }
