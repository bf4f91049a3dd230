package room

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-mudcore/internal/display"
	"github.com/pixil98/go-mudcore/internal/living"
)

// render builds the look output for one viewer: name, wrapped description,
// exits, then whoever and whatever else is here. Empty sections are omitted
// entirely.
func (r *Room) render(viewer *living.Entity) string {
	var b strings.Builder

	b.WriteString(r.tpl.Name)
	b.WriteString("\r\n")
	b.WriteString(display.Wrap(r.tpl.Description))
	b.WriteString("\r\n")

	if len(r.tpl.Exits) > 0 {
		dirs := make([]string, 0, len(r.tpl.Exits))
		for dir := range r.tpl.Exits {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs)
		b.WriteString(fmt.Sprintf("[Exits]: %s\r\n", strings.Join(dirs, " ")))
	}

	for _, p := range r.sortedPlayers() {
		if viewer != nil && p.ID() == viewer.ID() {
			continue
		}
		b.WriteString(fmt.Sprintf("%s is here.\r\n", p.Name()))
	}

	for _, mob := range r.sortedMobs() {
		tpl := mob.MobTemplate()
		if tpl != nil && tpl.LongDesc != "" {
			b.WriteString(tpl.LongDesc)
			b.WriteString("\r\n")
			continue
		}
		b.WriteString(fmt.Sprintf("%s is here.\r\n", mob.Name()))
	}

	for _, item := range r.items {
		b.WriteString(fmt.Sprintf("%s lies here.\r\n", display.Capitalize(item.DisplayName())))
	}

	return strings.TrimSuffix(b.String(), "\r\n")
}

// matchesTemplate is the substring match used by target selection.
func matchesTemplate(name string, aliases []string, keyword string) bool {
	kw := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(name), kw) {
		return true
	}
	for _, alias := range aliases {
		if strings.Contains(strings.ToLower(alias), kw) {
			return true
		}
	}
	return false
}
