// Command talan shows a crafting task list: pick a crafting job, name an
// item and keep track of what is left to craft.
//
// Set TALAN_DEBUG=1 for debug logging.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/talanapp/talan"
	"github.com/talanapp/talan/app"
	"github.com/talanapp/talan/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	app.SetVerbose(os.Getenv("TALAN_DEBUG") != "")

	sys, err := opengl.Init(os.Args[0])
	if err != nil {
		return err
	}

	list := &craftList{}
	var (
		job  int
		item string
		show int
	)
	return sys.MainLoop(func(run *bool, ui *gui.UI) {
		size := ui.DisplaySize()
		ui.Window("Crafting list", gui.Rect{X: 0, Y: 0, W: size.X, H: size.Y})(func() {
			gui.Combo(ui, "Job", &job, jobs)
			ui.InputText("Item", &item, gui.WithHint("item name"), gui.WithMaxLength(64))
			ui.SameLine(-1)
			if ui.Button("Add") && list.add(jobs[job], item) {
				item = ""
			}

			ui.RadioGroupHorizontal("Show", &show, filterNames)

			ui.Separator()
			th := ui.Theme()
			footer := 2*ui.LineHeight() + 4*th.FramePadding.Y + 4*th.ItemSpacing.Y + th.WindowPadding.Y + 4
			listH := max(3*ui.LineHeight(), size.Y-ui.CursorPos().Y-footer)
			remove, resort := -1, false
			ui.Scrollable("tasks", listH)(func() {
				if list.len() == 0 {
					ui.TextDisabled("Nothing to craft.")
				}
				for i := range list.entries {
					e := &list.entries[i]
					if !filter(show).match(*e) {
						continue
					}
					ui.PushIDInt(i)
					if ui.Checkbox("##done", &e.done) {
						resort = true
					}
					ui.SameLine(-1)
					if e.done {
						ui.TextDisabled(e.String())
					} else {
						ui.Text(e.String())
					}
					ui.SameLine(-1)
					if ui.SmallButton("Remove") {
						remove = i
					}
					ui.PopID()
				}
			})
			if remove >= 0 {
				list.remove(remove)
			}
			if resort {
				list.sort()
			}

			ui.Separator()
			ui.ProgressBar(list.progress())
			ui.Spacing()
			if ui.Button("Quit") {
				*run = false
			}
		})
	})
}
