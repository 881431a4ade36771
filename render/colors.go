package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/tony-format/go-inspect/classify"
)

type Colorable struct {
	Category classify.Category
	Part     Part
}

// Part is a part of a rendered line.
type Part int

const (
	NamePart Part = iota
	TypePart
	SizePart
	ValuePart
	HintPart
	TogglePart
	FilterPart
	LoadingPart
	FullTextPart
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, c := range classify.Categories() {
		able := Colorable{Category: c, Part: NamePart}
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Part = TypePart
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Part = SizePart
		colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
		able.Part = HintPart
		colors.Map[able] = color.New(color.FgBlue).SprintfFunc()
		able.Part = TogglePart
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Part = FilterPart
		colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
		able.Part = LoadingPart
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	}
	able := Colorable{Part: ValuePart}

	able.Category = classify.Number
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Category = classify.Null
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Category = classify.Undefined
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Category = classify.Boolean
	colors.Map[able] = color.New(color.FgCyan).SprintfFunc()

	able.Category = classify.Date
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Category = classify.String
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Part = FullTextPart
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(cat classify.Category, p Part, s string) string {
	return c.Get(cat, p)(s)
}

func (c *Colors) Get(cat classify.Category, p Part) func(string, ...any) string {
	f := c.Map[Colorable{Category: cat, Part: p}]
	if f == nil {
		return c.Default
	}
	return f
}
