package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zfake/internal/identity"
)

const (
	sliderMax   = float64(identity.MaxMistakeRate) / identity.SliderScale
	sliderWidth = 20
)

// formModel holds the three settings controls. The slider and the rate
// field are linked: moving one rewrites the other.
type formModel struct {
	opts   identity.Options
	slider float64
	rate   textinput.Model
	seed   textinput.Model
}

func newFormModel(opts identity.Options) formModel {
	rate := textinput.New()
	rate.Prompt = ""
	rate.Placeholder = "0-1000"
	rate.CharLimit = 8
	rate.Width = 8

	seed := textinput.New()
	seed.Prompt = ""
	seed.Placeholder = "16-digit number"
	seed.CharLimit = identity.MaxSeedDigits
	seed.Width = identity.MaxSeedDigits + 2

	f := formModel{rate: rate, seed: seed}
	return f.withOptions(opts)
}

// withOptions rewrites every control from opts.
func (f formModel) withOptions(opts identity.Options) formModel {
	f.opts = opts
	f.slider = identity.RateSlider(opts.MistakeRate)
	f.rate.SetValue(formatRate(opts.MistakeRate))
	f.rate.CursorEnd()
	f.seed.SetValue(strconv.FormatInt(opts.Seed, 10))
	f.seed.CursorEnd()
	return f
}

func (f formModel) focus(id focusID) formModel {
	f.rate.Blur()
	f.seed.Blur()
	switch id {
	case focusRate:
		f.rate.Focus()
	case focusSeed:
		f.seed.Focus()
	}
	return f
}

// update applies msg to the focused control and returns the resulting
// snapshot. Rejected input leaves the snapshot and the field unchanged.
func (f formModel) update(id focusID, msg tea.KeyMsg) (formModel, identity.Options, error) {
	switch id {
	case focusRegion:
		switch msg.String() {
		case "left", "h":
			f.opts = f.opts.WithRegion(f.opts.Region.Prev())
		case "right", "l", " ":
			f.opts = f.opts.WithRegion(f.opts.Region.Next())
		}

	case focusSlider:
		switch msg.String() {
		case "left", "h":
			f = f.withSlider(f.slider - identity.SliderStep)
		case "right", "l":
			f = f.withSlider(f.slider + identity.SliderStep)
		case "home":
			f = f.withSlider(0)
		case "end":
			f = f.withSlider(sliderMax)
		}

	case focusRate:
		prev := f.rate.Value()
		f.rate, _ = f.rate.Update(msg)
		if f.rate.Value() == prev {
			return f, f.opts, nil
		}
		v, err := identity.ParseMistakeRate(f.rate.Value())
		if err != nil {
			f.rate.SetValue(prev)
			f.rate.CursorEnd()
			return f, f.opts, err
		}
		f.opts = f.opts.WithMistakeRate(v)
		f.slider = identity.RateSlider(v)

	case focusSeed:
		prev := f.seed.Value()
		f.seed, _ = f.seed.Update(msg)
		if f.seed.Value() == prev {
			return f, f.opts, nil
		}
		v, err := identity.ParseSeed(f.seed.Value())
		if err != nil {
			f.seed.SetValue(prev)
			f.seed.CursorEnd()
			return f, f.opts, err
		}
		f.opts = f.opts.WithSeed(v)
	}

	return f, f.opts, nil
}

func (f formModel) withSlider(v float64) formModel {
	v = min(max(v, 0), sliderMax)
	f.slider = v
	f.opts = f.opts.WithMistakeRate(identity.SliderRate(v))
	f.rate.SetValue(formatRate(f.opts.MistakeRate))
	f.rate.CursorEnd()
	return f
}

func (f formModel) View(active focusID) string {
	var b strings.Builder

	region := fmt.Sprintf("‹ %s ›", f.opts.Region)
	b.WriteString(formLine("region", region, active == focusRegion))

	bar := sliderBar(f.slider)
	b.WriteString(formLine("mistakes", fmt.Sprintf("%s %5.2f", bar, f.slider), active == focusSlider))
	b.WriteString(formLine("rate", f.rate.View(), active == focusRate))
	b.WriteString(formLine("seed", f.seed.View(), active == focusSeed))

	return b.String()
}

func formLine(label, value string, active bool) string {
	l := zstyle.MutedText.Render(fmt.Sprintf("%-10s", label))
	if active {
		accent := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)
		return "  " + accent.Render("▸") + " " + l + " " + value + "\n"
	}
	return "    " + l + " " + value + "\n"
}

func sliderBar(v float64) string {
	filled := int(v / sliderMax * sliderWidth)
	return strings.Repeat("█", filled) + zstyle.MutedText.Render(strings.Repeat("░", sliderWidth-filled))
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
