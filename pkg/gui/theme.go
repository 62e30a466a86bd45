package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name      string      `json:"name"`
	Board     tcell.Color `json:"board"`
	Empty     tcell.Color `json:"empty"`
	PlayerA   tcell.Color `json:"playerA"`
	PlayerB   tcell.Color `json:"playerB"`
	Highlight tcell.Color `json:"highlight"`
	LabelBg   tcell.Color `json:"labelBg"`
	LabelFg   tcell.Color `json:"labelFg"`
	Banner    tcell.Color `json:"banner"`
	Hint      tcell.Color `json:"hint"`
	File      tcell.Color `json:"file"`
}

// ThemeHex is the serialized form of a Theme
type ThemeHex struct {
	Name      string `json:"name"`
	Board     string `json:"board"`
	Empty     string `json:"empty"`
	PlayerA   string `json:"playerA"`
	PlayerB   string `json:"playerB"`
	Highlight string `json:"highlight"`
	LabelBg   string `json:"labelBg"`
	LabelFg   string `json:"labelFg"`
	Banner    string `json:"banner"`
	Hint      string `json:"hint"`
	File      string `json:"file"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		Name:      t.Name,
		Board:     fmtHex(t.Board.Hex()),
		Empty:     fmtHex(t.Empty.Hex()),
		PlayerA:   fmtHex(t.PlayerA.Hex()),
		PlayerB:   fmtHex(t.PlayerB.Hex()),
		Highlight: fmtHex(t.Highlight.Hex()),
		LabelBg:   fmtHex(t.LabelBg.Hex()),
		LabelFg:   fmtHex(t.LabelFg.Hex()),
		Banner:    fmtHex(t.Banner.Hex()),
		Hint:      fmtHex(t.Hint.Hex()),
		File:      fmtHex(t.File.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		Name:      t.Name,
		Board:     tcell.GetColor(t.Board),
		Empty:     tcell.GetColor(t.Empty),
		PlayerA:   tcell.GetColor(t.PlayerA),
		PlayerB:   tcell.GetColor(t.PlayerB),
		Highlight: tcell.GetColor(t.Highlight),
		LabelBg:   tcell.GetColor(t.LabelBg),
		LabelFg:   tcell.GetColor(t.LabelFg),
		Banner:    tcell.GetColor(t.Banner),
		Hint:      tcell.GetColor(t.Hint),
		File:      tcell.GetColor(t.File),
	}
}

// ErrNoTheme is returned when a theme name matches nothing
var ErrNoTheme = errors.New("theme: no theme found")

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument. Built-in themes are
// searched after the provided ones.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, ErrNoTheme
}

// LoadThemes reads a JSON array of ThemeHex from path
func LoadThemes(path string) ([]ThemeHex, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes: %w", err)
	}

	var themes []ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("failed to parse themes in %s: %w", path, err)
	}

	return themes, nil
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:      "basic",
	Board:     tcell.Color19,
	Empty:     tcell.Color252,
	PlayerA:   tcell.Color160,
	PlayerB:   tcell.Color220,
	Highlight: tcell.Color232,
	LabelBg:   tcell.Color252,
	LabelFg:   tcell.ColorBlack,
	Banner:    tcell.Color220,
	Hint:      tcell.Color247,
	File:      tcell.Color247,
}

// ThemeClassic uses the pure window colors of the desktop game
var ThemeClassic = ThemeHex{
	Name:      "classic",
	Board:     "#0000ff",
	Empty:     "#ffffff",
	PlayerA:   "#ff0000",
	PlayerB:   "#ffff00",
	Highlight: "#000000",
	LabelBg:   "#ffffff",
	LabelFg:   "#000000",
	Banner:    "#0",
	Hint:      "#0",
	File:      "#0",
}.Theme()

var BuiltinThemes = []Theme{ThemeBasic, ThemeClassic}
