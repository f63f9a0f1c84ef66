package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// renderPlantLine formats one catalog row for list output.
func renderPlantLine(p *domain.Plant) string {
	meta := fmt.Sprintf("zone %d, water every %d days", p.GrowZoneNumber, p.WateringInterval)
	return fmt.Sprintf("  %s  %s\n      %s",
		nameStyle.Render(p.Name), mutedStyle.Render("("+p.ID+")"), mutedStyle.Render(meta))
}

// renderPlanting formats one planting row under its plant header.
func renderPlanting(gp *domain.GardenPlanting) string {
	return fmt.Sprintf("      #%d  planted %s, last watered %s",
		gp.ID, renderDate(gp.PlantDate), renderDate(gp.LastWateringDate))
}

func renderDate(t time.Time) string {
	return t.Format("2006-01-02")
}
