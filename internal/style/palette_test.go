package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mgpai22/rang/internal/config"
	"github.com/mgpai22/rang/internal/subtitle"
)

func TestBuildDefault(t *testing.T) {
	p := Build(config.Default())

	if p.Len() != 9 {
		t.Fatalf("expected 9 styles, got %d", p.Len())
	}

	def, ok := p.Lookup(DefaultName)
	if !ok {
		t.Fatal("Default style missing")
	}

	want := subtitle.Style{
		Name:           "Default",
		FontName:       "Clear Sans Medium",
		FontSize:       73,
		Bold:           true,
		PrimaryColor:   subtitle.Color{R: 255, G: 255, B: 255},
		SecondaryColor: subtitle.Color{R: 255},
		OutlineColor:   subtitle.Color{},
		BackColor:      subtitle.Color{A: 160},
		Outline:        3.5,
		Shadow:         2.1,
		Alignment:      2,
		MarginL:        100,
		MarginR:        100,
		MarginV:        78,
	}
	if diff := cmp.Diff(want, def); diff != "" {
		t.Errorf("Default mismatch (-want +got):\n%s", diff)
	}
}

func TestVariantsDifferOnlyInColor(t *testing.T) {
	p := Build(config.Default())
	def, _ := p.Lookup(DefaultName)

	colors := map[string]subtitle.Color{
		"White":   {R: 255, G: 255, B: 255},
		"Lime":    {G: 255},
		"Cyan":    {G: 255, B: 255},
		"Red":     {R: 255},
		"Yellow":  {R: 255, G: 255},
		"Magenta": {R: 255, B: 255},
		"Blue":    {B: 255},
		"Black":   {},
	}

	for name, primary := range colors {
		t.Run(name, func(t *testing.T) {
			s, ok := p.Lookup(name)
			if !ok {
				t.Fatalf("style %s missing", name)
			}
			if s.PrimaryColor != primary {
				t.Errorf("PrimaryColor = %+v, want %+v", s.PrimaryColor, primary)
			}

			ignore := cmpopts.IgnoreFields(subtitle.Style{}, "Name", "PrimaryColor")
			if name == "Black" {
				ignore = cmpopts.IgnoreFields(subtitle.Style{}, "Name", "PrimaryColor", "OutlineColor")
				if s.OutlineColor != (subtitle.Color{R: 255, G: 255, B: 255}) {
					t.Errorf("Black OutlineColor = %+v, want white", s.OutlineColor)
				}
			}
			if diff := cmp.Diff(def, s, ignore); diff != "" {
				t.Errorf("variant differs from Default (-default +%s):\n%s", name, diff)
			}
		})
	}
}

func TestStylesReturnsCopy(t *testing.T) {
	p := Build(config.Default())
	styles := p.Styles()
	styles[0].FontName = "Comic Sans"

	def, _ := p.Lookup(DefaultName)
	if def.FontName != "Clear Sans Medium" {
		t.Errorf("palette was mutated through Styles(): %s", def.FontName)
	}
	if styles[0].Name != DefaultName {
		t.Errorf("first style = %s, want Default", styles[0].Name)
	}
}

func TestBuildFollowsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Font.Name = "Arial"
	cfg.Layout.DefaultLinePercent = 80

	p := Build(cfg)
	for _, s := range p.Styles() {
		if s.FontName != "Arial" {
			t.Errorf("%s: FontName = %s, want Arial", s.Name, s.FontName)
		}
		if s.MarginV != 186 {
			t.Errorf("%s: MarginV = %d, want 186", s.Name, s.MarginV)
		}
	}
}

func TestInfo(t *testing.T) {
	want := []subtitle.InfoField{
		{Key: "YCbCr Matrix", Value: "TV.709"},
		{Key: "PlayResX", Value: "1920"},
		{Key: "PlayResY", Value: "1080"},
	}
	if diff := cmp.Diff(want, Info(config.Default())); diff != "" {
		t.Errorf("Info mismatch (-want +got):\n%s", diff)
	}
}
