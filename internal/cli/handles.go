package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/geom"
)

// handlesCommand creates the handles command, a reference table of the
// resize handles.
func (c *CLI) handlesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "handles",
		Short: "List resize handles, their cursors and anchors",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(stdout, handlesTable())
		},
	}
}

func handlesTable() string {
	rows := make([][]string, 0, 8)
	for _, h := range geom.Handles() {
		rows = append(rows, []string{h.String(), geom.ResizeCursor(h), anchorOf(h), yesNo(h.IsCorner())})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Handle", "Cursor", "Fixed", "Aspect lock").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleHighlight
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// anchorOf names the part of the block that stays put while h is dragged.
func anchorOf(h geom.Handle) string {
	var v, x string
	switch {
	case h.MovesY():
		v = "bottom"
	case h == geom.HandleBottomLeft || h == geom.HandleBottomRight || h == geom.HandleBottom:
		v = "top"
	}
	switch {
	case h.MovesX():
		x = "right"
	case h == geom.HandleTopRight || h == geom.HandleBottomRight || h == geom.HandleRight:
		x = "left"
	}
	switch {
	case v != "" && x != "":
		return v + "-" + x
	case v != "":
		return v + " edge"
	default:
		return x + " edge"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
