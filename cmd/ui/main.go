package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"go.uber.org/zap"

	"todoboard/internal/config"
	"todoboard/internal/logger"
	"todoboard/pkg/board"
	"todoboard/pkg/gateway"
)

var theme *material.Theme

var (
	colorSuccess = color.NRGBA{R: 0x19, G: 0x87, B: 0x54, A: 0xFF}
	colorWarning = color.NRGBA{R: 0xFF, G: 0xC1, B: 0x07, A: 0xFF}
	colorDanger  = color.NRGBA{R: 0xC0, G: 0x30, B: 0x30, A: 0xFF}
	colorMuted   = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
)

type UI struct {
	ctrl *board.Controller

	// Add form
	taskEditor widget.Editor
	addBtn     widget.Clickable

	// Filters
	searchEditor widget.Editor
	fromEditor   widget.Editor
	toEditor     widget.Editor

	// List and pagination
	taskList widget.List
	pageBtns []widget.Clickable
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		zap.NewExample().Fatal("init logger", zap.Error(err))
	}
	defer log.Sync()

	theme = material.NewTheme()
	theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	w := new(app.Window)
	w.Option(app.Title(cfg.UI.Title))
	w.Option(app.Size(unit.Dp(float32(cfg.UI.Width)), unit.Dp(float32(cfg.UI.Height))))

	ctx, cancel := context.WithCancel(context.Background())
	remote := gateway.New(cfg.Remote.BaseURL, cfg.Remote.Timeout, log.Named("gateway"))
	ui := &UI{
		ctrl: board.New(ctx, remote, board.Options{
			FetchLimit: cfg.Remote.FetchLimit,
			ErrorTTL:   cfg.UI.ErrorTTL,
			Notify:     w.Invalidate,
			Log:        log.Named("board"),
		}),
	}
	ui.taskList.Axis = layout.Vertical
	ui.taskEditor.SingleLine = true
	ui.taskEditor.Submit = true
	ui.searchEditor.SingleLine = true
	ui.fromEditor.SingleLine = true
	ui.toEditor.SingleLine = true

	log.Info("todoboard starting", zap.String("remote", cfg.Remote.BaseURL))

	go func() {
		err := ui.run(w)
		cancel()
		if err != nil {
			log.Error("window closed", zap.Error(err))
			log.Sync()
			os.Exit(1)
		}
		log.Sync()
		os.Exit(0)
	}()
	app.Main()
}

func (ui *UI) run(w *app.Window) error {
	ui.ctrl.Update(board.Refresh{})

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			ui.ctrl.Drain()
			ui.handleEvents(gtx)
			ui.layout(gtx, ui.ctrl.View())
			e.Frame(gtx.Ops)
		}
	}
}

// handleEvents turns widget events into controller messages.
func (ui *UI) handleEvents(gtx layout.Context) {
	for {
		ev, ok := ui.taskEditor.Update(gtx)
		if !ok {
			break
		}
		switch ev.(type) {
		case widget.ChangeEvent:
			ui.ctrl.Update(board.EditDraft{Text: ui.taskEditor.Text()})
		case widget.SubmitEvent:
			ui.ctrl.Update(board.AddTask{})
		}
	}
	if ui.addBtn.Clicked(gtx) {
		ui.ctrl.Update(board.AddTask{})
	}

	for {
		ev, ok := ui.searchEditor.Update(gtx)
		if !ok {
			break
		}
		if _, changed := ev.(widget.ChangeEvent); changed {
			ui.ctrl.Update(board.SetSearch{Query: ui.searchEditor.Text()})
		}
	}
	for {
		ev, ok := ui.fromEditor.Update(gtx)
		if !ok {
			break
		}
		if _, changed := ev.(widget.ChangeEvent); changed {
			ui.ctrl.Update(board.SetDateBound{Bound: board.BoundFrom, Value: ui.fromEditor.Text()})
		}
	}
	for {
		ev, ok := ui.toEditor.Update(gtx)
		if !ok {
			break
		}
		if _, changed := ev.(widget.ChangeEvent); changed {
			ui.ctrl.Update(board.SetDateBound{Bound: board.BoundTo, Value: ui.toEditor.Text()})
		}
	}

	for i := range ui.pageBtns {
		if ui.pageBtns[i].Clicked(gtx) {
			ui.ctrl.Update(board.SetPage{N: i + 1})
		}
	}
}

func (ui *UI) layout(gtx layout.Context, v board.View) layout.Dimensions {
	// Keep the input in step with the draft; it is cleared after a successful add.
	if ui.taskEditor.Text() != v.Draft {
		ui.taskEditor.SetText(v.Draft)
	}
	for len(ui.pageBtns) < len(v.Pages) {
		ui.pageBtns = append(ui.pageBtns, widget.Clickable{})
	}

	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.H5(theme, "Todos").Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(ui.layoutAddForm),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(ui.layoutFilters),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layoutStatus(gtx, v)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return ui.layoutTasks(gtx, v)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return ui.layoutPagination(gtx, v)
			}),
		)
	})
}

func (ui *UI) layoutAddForm(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.Editor(theme, &ui.taskEditor, "Add a new todo...").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Button(theme, &ui.addBtn, "Add").Layout(gtx)
		}),
	)
}

func (ui *UI) layoutFilters(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(2, func(gtx layout.Context) layout.Dimensions {
			return material.Editor(theme, &ui.searchEditor, "Search todos...").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.Editor(theme, &ui.fromEditor, "From (YYYY-MM-DD)").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.Editor(theme, &ui.toEditor, "To (YYYY-MM-DD)").Layout(gtx)
		}),
	)
}

func layoutStatus(gtx layout.Context, v board.View) layout.Dimensions {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if !v.Busy {
				return layout.Dimensions{}
			}
			gtx.Constraints.Max = image.Pt(gtx.Dp(unit.Dp(20)), gtx.Dp(unit.Dp(20)))
			return material.Loader(theme).Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if v.Error == "" {
				return layout.Dimensions{}
			}
			label := material.Body2(theme, v.Error)
			label.Color = colorDanger
			label.Font.Weight = font.Bold
			return label.Layout(gtx)
		}),
	)
}

func (ui *UI) layoutTasks(gtx layout.Context, v board.View) layout.Dimensions {
	if len(v.Items) == 0 {
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			label := material.Body1(theme, v.Placeholder)
			label.Color = colorMuted
			return label.Layout(gtx)
		})
	}
	return material.List(theme, &ui.taskList).Layout(gtx, len(v.Items), func(gtx layout.Context, i int) layout.Dimensions {
		item := v.Items[i]
		return layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return material.Body1(theme, item.Text).Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return badge(gtx, item)
				}),
			)
		})
	})
}

func badge(gtx layout.Context, item board.Item) layout.Dimensions {
	bg, fg := colorWarning, color.NRGBA{A: 0xFF}
	if item.BadgeStyle == board.BadgeSuccess {
		bg, fg = colorSuccess, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			rect := image.Rectangle{Max: gtx.Constraints.Min}
			defer clip.UniformRRect(rect, gtx.Dp(unit.Dp(4))).Push(gtx.Ops).Pop()
			paint.Fill(gtx.Ops, bg)
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(2), Bottom: unit.Dp(2), Left: unit.Dp(6), Right: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				label := material.Caption(theme, item.Status)
				label.Color = fg
				label.Font.Weight = font.Bold
				return label.Layout(gtx)
			})
		},
	)
}

func (ui *UI) layoutPagination(gtx layout.Context, v board.View) layout.Dimensions {
	children := make([]layout.FlexChild, 0, len(v.Pages)*2)
	for i, p := range v.Pages {
		btn := &ui.pageBtns[i]
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				b := material.Button(theme, btn, fmt.Sprint(p.Number))
				if !p.Active {
					b.Background = color.NRGBA{A: 0}
					b.Color = theme.Palette.ContrastBg
				}
				return b.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		)
	}
	return layout.Flex{}.Layout(gtx, children...)
}
