// Command headless-demo shows focus containment in action: Tab cycles
// within the open dialog, focus cannot escape it, and closing the
// dialog returns focus to the element that opened it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tcellbackend "github.com/yuta-ike/headlessui/pkg/backend/tcell"
	"github.com/yuta-ike/headlessui/pkg/runtime"
	"github.com/yuta-ike/headlessui/pkg/terminal"
	"github.com/yuta-ike/headlessui/pkg/theme"
	"github.com/yuta-ike/headlessui/pkg/trap"
	"github.com/yuta-ike/headlessui/pkg/widgets"
)

var tickRate = flag.Duration("tick", 50*time.Millisecond, "render tick interval")

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "headless-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	be, err := tcellbackend.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	root := widgets.NewPanel(
		widgets.NewButton("open-dialog", "Open dialog"),
		widgets.NewInput("notes", "type here, then open the dialog"),
		widgets.NewButton("quit", "Quit", runtime.Quit{}),
	)

	var app *runtime.App
	app = runtime.NewApp(runtime.AppConfig{
		Backend:  be,
		Root:     root,
		Theme:    theme.Default(),
		TickRate: *tickRate,
		Update: func(a *runtime.App, msg runtime.Message) bool {
			if key, ok := msg.(runtime.KeyMsg); ok && key.Key == terminal.KeyCtrlC {
				a.Quit()
				return false
			}
			return runtime.DefaultUpdate(a, msg)
		},
		CommandHandler: func(cmd runtime.Command) bool {
			pressed, ok := cmd.(runtime.Pressed)
			if !ok {
				return false
			}
			switch pressed.ID {
			case "open-dialog":
				if err := app.Screen().PushLayer(newDialog(), true); err != nil {
					// A dialog with nothing focusable is a bug in this
					// demo, not the library; surface it loudly.
					panic(err)
				}
				return true
			case "open-nested":
				// The parent dialog must stand down while the child is
				// open, or its own lock would veto focus entering the
				// child. It re-arms when the child closes.
				parent := topModal(app.Screen())
				if parent != nil {
					_ = parent.SetFeatures(trap.RestoreFocus)
				}
				nested := newNestedDialog(func() {
					if parent != nil {
						_ = parent.SetFeatures(trap.All)
					}
				})
				if err := app.Screen().PushLayer(nested, true); err != nil {
					panic(err)
				}
				return true
			}
			return false
		},
	})

	return ignoreCancelled(app.Run(context.Background()))
}

func newDialog() *widgets.Modal {
	return widgets.NewModal("Settings", widgets.ModalOptions{
		Features:       trap.All,
		InitialFocusID: "name",
	},
		widgets.NewInput("name", "display name"),
		widgets.NewInput("email", "email address"),
		widgets.NewButton("open-nested", "More…"),
		widgets.NewButton("close", "Close", runtime.PopOverlay{}),
	)
}

func newNestedDialog(onClose func()) *widgets.Modal {
	return widgets.NewModal("Confirm", widgets.ModalOptions{
		Features: trap.All,
		Width:    34,
		OnClose:  onClose,
	},
		widgets.NewButton("yes", "Yes", runtime.PopOverlay{}),
		widgets.NewButton("no", "No", runtime.PopOverlay{}),
	)
}

// topModal returns the modal rooting the top layer, if any.
func topModal(s *runtime.Screen) *widgets.Modal {
	top := s.TopLayer()
	if top == nil {
		return nil
	}
	m, _ := top.Root.(*widgets.Modal)
	return m
}

func ignoreCancelled(err error) error {
	if err == context.Canceled {
		return nil
	}
	return err
}
