package ui

import (
	"strings"

	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ConsoleUI is the developer console overlay: a history panel above a text
// input. Lines submitted with Enter are handed to OnSubmit.
type ConsoleUI struct {
	UI *ebitenui.UI

	OnSubmit func(line string)

	panel   *widget.Container
	input   *widget.TextInput
	history []*widget.Label
	open    bool

	face text.Face
}

func NewConsoleUI(onSubmit func(line string)) *ConsoleUI {
	ui := &ConsoleUI{
		OnSubmit: onSubmit,
		face:     text.NewGoXFace(fonts.Small.Get()),
	}
	ui.buildUI()
	return ui
}

func (ui *ConsoleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	ui.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Console.Background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)
	ui.panel.GetWidget().Visibility = widget.Visibility_Hide

	for i := 0; i < cfg.Console.Lines; i++ {
		label := widget.NewLabel(
			widget.LabelOpts.Text("", &ui.face, &widget.LabelColor{
				Idle: cfg.Console.TextColor,
			}),
		)
		ui.history = append(ui.history, label)
		ui.panel.AddChild(label)
	}

	ui.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 22),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(cfg.Console.InputBackground),
			Disabled: image.NewNineSliceColor(cfg.Console.InputBackground),
		}),
		widget.TextInputOpts.Face(&ui.face),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.White,
			Disabled:      cfg.Gray,
			Caret:         cfg.White,
			DisabledCaret: cfg.Gray,
		}),
		widget.TextInputOpts.Placeholder("Help"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			if clean := sanitizeInput(args.InputText, cfg.Console.MaxInput); clean != args.InputText {
				ui.input.SetText(clean)
			}
		}),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			line := sanitizeInput(args.InputText, cfg.Console.MaxInput)
			ui.input.SetText("")
			if ui.OnSubmit != nil {
				ui.OnSubmit(line)
			}
		}),
	)
	ui.panel.AddChild(ui.input)

	rootContainer.AddChild(ui.panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// Sync shows or hides the overlay and refreshes the visible history.
func (ui *ConsoleUI) Sync(open bool, history []string) {
	if open != ui.open {
		ui.open = open
		if open {
			ui.panel.GetWidget().Visibility = widget.Visibility_Show
		} else {
			ui.panel.GetWidget().Visibility = widget.Visibility_Hide
			ui.input.SetText("")
		}
		ui.input.Focus(open)
	}

	lines := tail(history, len(ui.history))
	for i, label := range ui.history {
		label.Label = ""
		if i < len(lines) {
			label.Label = lines[i]
		}
	}
}

func (ui *ConsoleUI) Update() {
	ui.UI.Update()
}

func (ui *ConsoleUI) Draw(screen *ebiten.Image) {
	if !ui.open {
		return
	}
	ui.UI.Draw(screen)
}

// sanitizeInput drops the console toggle key and caps the line length.
func sanitizeInput(s string, limit int) string {
	s = strings.ReplaceAll(s, "`", "")
	if limit > 0 {
		if runes := []rune(s); len(runes) > limit {
			s = string(runes[:limit])
		}
	}
	return s
}

// tail returns the last n lines.
func tail(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) > n {
		return lines[len(lines)-n:]
	}
	return lines
}
