package game

import (
	"errors"
	"log"
	"math"
	"strconv"

	"github.com/ncruces/zenity"

	"github.com/darajkong/scale-comparison/internal/emath"
	"github.com/darajkong/scale-comparison/internal/store"
	"github.com/darajkong/scale-comparison/internal/thing"
	"github.com/darajkong/scale-comparison/internal/units"
)

var jsonFilter = zenity.FileFilters{{
	Name:     "JSON",
	Patterns: []string{"*.json"},
}}

// promptValue asks for a significand/exponent pair. Malformed input is
// rejected in place: the edit is discarded and an error box is shown,
// leaving the committed value untouched.
func promptValue(title, defaultSig, defaultExp string) (emath.ENumber, bool) {
	sig, err := zenity.Entry("Significand", zenity.Title(title), zenity.EntryText(defaultSig))
	if err != nil {
		return emath.ENumber{}, false
	}
	exp, err := zenity.Entry("Exponent (power of ten)", zenity.Title(title), zenity.EntryText(defaultExp))
	if err != nil {
		return emath.ENumber{}, false
	}
	n, err := emath.Parse(sig, exp)
	if err != nil {
		_ = zenity.Error("Not a number: "+err.Error(), zenity.Title(title))
		return emath.ENumber{}, false
	}
	return n, true
}

func (a *App) addItemDialog() {
	a.pause()
	name, err := zenity.Entry("Name", zenity.Title("Add item"))
	if err != nil {
		return
	}
	n, ok := promptValue("Add item", "1", "0")
	if !ok {
		return
	}
	a.things = append(a.things, thing.New(name, units.New(n)))
	a.commitEdit()
}

// editItemDialog edits the item the shift pointer last passed.
func (a *App) editItemDialog() {
	a.pause()
	idx := int(math.Floor(a.view.Shift)) - 1
	if idx < 0 || idx >= len(a.things) {
		return
	}
	current := a.things[idx]
	name, err := zenity.Entry("Name", zenity.Title("Edit item"), zenity.EntryText(current.Name))
	if err != nil {
		return
	}
	num := current.Value.Num()
	n, ok := promptValue("Edit item",
		strconv.FormatFloat(num.Significand(), 'f', -1, 64),
		strconv.FormatFloat(num.Exponent(), 'f', -1, 64))
	if !ok {
		return
	}
	a.things[idx] = thing.New(name, units.New(n))
	a.commitEdit()
}

func (a *App) openDialog() {
	a.pause()
	path, err := zenity.SelectFile(zenity.Title("Open item list"), jsonFilter)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			a.lastErr = err
		}
		return
	}
	things, err := store.Load(path)
	if err != nil {
		a.lastErr = err
		_ = zenity.Error(err.Error(), zenity.Title("Open item list"))
		return
	}
	a.things = things
	a.dataPath = path
	a.lastErr = nil
	a.replay()
}

func (a *App) saveAsDialog() {
	a.pause()
	path, err := zenity.SelectFileSave(
		zenity.Title("Save item list"),
		zenity.Filename("data.json"),
		zenity.ConfirmOverwrite(),
		jsonFilter,
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			a.lastErr = err
		}
		return
	}
	if err := store.Save(path, a.things); err != nil {
		a.lastErr = err
		return
	}
	a.dataPath = path
	a.lastErr = nil
}

// commitEdit persists the current list and restarts the cycle so the
// new entry gets its reveal.
func (a *App) commitEdit() {
	if err := store.Save(a.dataPath, a.things); err != nil {
		log.Printf("[!] save %s: %v", a.dataPath, err)
		a.lastErr = err
	}
	a.replay()
}

func (a *App) pause() {
	a.view.Animation.Active = false
	a.accMillis = 0
}
