package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/geom"
	"github.com/matzehuels/pinboard/pkg/gesture"
)

// playCommand creates the play command, an interactive board editor.
func (c *CLI) playCommand() *cobra.Command {
	var (
		output string
		step   float64
	)

	cmd := &cobra.Command{
		Use:   "play [board]",
		Short: "Move, resize and rotate blocks interactively",
		Long: `Open a board in an interactive terminal editor.

Keys:
  ←↑↓→        move the selected block
  shift+←↑↓→  resize from the bottom-right handle
  [ ]         rotate by 15 degrees
  tab         select the next block
  s           toggle snapping
  enter       commit the current gesture
  esc         cancel the current gesture (quit when idle)
  w           write the board
  q           quit

Each run of the same key is one gesture: guides are shown while it is open,
and switching to another kind of gesture commits it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = args[0]
			}
			return c.runPlay(cmd.Context(), args[0], output, geom.Pixels(step))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file written by w (default: the input board)")
	cmd.Flags().Float64Var(&step, "step", 10, "pixels per key press")

	return cmd
}

// runPlay runs the editor until the user quits.
func (c *CLI) runPlay(ctx context.Context, input, output string, step geom.Pixels) error {
	b, err := loadBoard(ctx, input)
	if err != nil {
		return err
	}

	save := func(b *board.Board) error { return saveBoard(ctx, b, output) }
	m := newPlayModel(ctx, b, c.gestureOptions(), step, save)

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if pm, ok := final.(playModel); ok && pm.dirty {
		printWarning("Unsaved changes to %s discarded", output)
	}
	return nil
}

// =============================================================================
// playModel - Interactive board editor
// =============================================================================

type playModel struct {
	ctx   context.Context
	board *board.Board
	opts  gesture.Options
	step  geom.Pixels
	save  func(*board.Board) error

	cursor  int
	snap    bool
	session *gesture.Session
	dx, dy  geom.Pixels
	angle   int
	frame   gesture.Frame

	dirty  bool
	status string
}

func newPlayModel(ctx context.Context, b *board.Board, opts gesture.Options, step geom.Pixels, save func(*board.Board) error) playModel {
	if step <= 0 {
		step = 10
	}
	return playModel{ctx: ctx, board: b, opts: opts, step: step, save: save, snap: true}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		m.cancel()
		return m, tea.Quit
	case "esc":
		if m.session == nil {
			return m, tea.Quit
		}
		m.cancel()
		m.status = "gesture cancelled"
		return m, nil
	}
	if len(m.board.Blocks) == 0 {
		m.status = "board has no blocks"
		return m, nil
	}

	switch key.String() {
	case "up":
		m.move(0, -m.step)
	case "down":
		m.move(0, m.step)
	case "left":
		m.move(-m.step, 0)
	case "right":
		m.move(m.step, 0)
	case "shift+up":
		m.resize(0, -m.step)
	case "shift+down":
		m.resize(0, m.step)
	case "shift+left":
		m.resize(-m.step, 0)
	case "shift+right":
		m.resize(m.step, 0)
	case "[":
		m.rotate(-geom.RotationStep)
	case "]":
		m.rotate(geom.RotationStep)
	case "tab":
		m.commit()
		m.cursor = (m.cursor + 1) % len(m.board.Blocks)
	case "shift+tab":
		m.commit()
		m.cursor = (m.cursor + len(m.board.Blocks) - 1) % len(m.board.Blocks)
	case "s":
		m.snap = !m.snap
		m.status = "snapping " + onOff(m.snap)
	case "enter":
		m.commit()
	case "w":
		m.commit()
		if err := m.save(m.board); err != nil {
			m.status = "write failed: " + err.Error()
		} else {
			m.dirty = false
			m.status = "written"
		}
	}
	return m, nil
}

func (m *playModel) selectedID() string {
	return m.board.Blocks[m.cursor].ID
}

// begin opens a gesture of the given kind, committing any other open one.
func (m *playModel) begin(kind gesture.Kind, h geom.Handle) bool {
	if m.session != nil && (m.session.Kind() != kind || m.session.BlockID() != m.selectedID()) {
		m.commit()
	}
	if m.session != nil {
		return true
	}
	s, err := gesture.Start(m.ctx, kind, m.board, m.selectedID(), h, m.opts)
	if err != nil {
		m.status = err.Error()
		return false
	}
	m.session = s
	m.dx, m.dy = 0, 0
	m.angle = s.Last().Block.Rotation
	m.frame = s.Last()
	return true
}

func (m *playModel) apply(in gesture.Input) {
	f, err := m.session.Update(m.ctx, in)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.frame = f
	m.status = ""
}

func (m *playModel) move(ddx, ddy geom.Pixels) {
	if !m.begin(gesture.KindMove, geom.HandleBottomRight) {
		return
	}
	m.dx += ddx
	m.dy += ddy
	m.apply(gesture.Input{DX: m.dx, DY: m.dy, Snap: m.snap})
}

func (m *playModel) resize(ddx, ddy geom.Pixels) {
	if !m.begin(gesture.KindResize, geom.HandleBottomRight) {
		return
	}
	m.dx += ddx
	m.dy += ddy
	m.apply(gesture.Input{DX: m.dx, DY: m.dy})
}

// rotate turns the block by delta degrees by placing a virtual pointer at
// that angle from the block center.
func (m *playModel) rotate(delta int) {
	if !m.begin(gesture.KindRotate, geom.HandleBottomRight) {
		return
	}
	m.angle += delta
	cx, cy := m.session.Center()
	rad := float64(m.angle) * math.Pi / 180
	m.apply(gesture.Input{
		MouseX: cx + 100*math.Sin(rad),
		MouseY: cy - 100*math.Cos(rad),
		Snap:   true,
	})
}

func (m *playModel) commit() {
	if m.session == nil {
		return
	}
	next, err := m.session.Commit(m.ctx)
	m.session = nil
	m.frame = gesture.Frame{}
	if err != nil {
		m.status = err.Error()
		return
	}
	m.board = next
	m.dirty = true
}

func (m *playModel) cancel() {
	if m.session == nil {
		return
	}
	m.session.Cancel(m.ctx)
	m.session = nil
	m.frame = gesture.Frame{}
}

// block returns block i as currently displayed, including an open gesture.
func (m playModel) block(i int) board.Block {
	b := m.board.Blocks[i]
	if m.session != nil && m.session.BlockID() == b.ID {
		return m.frame.Block
	}
	return b
}

func (m playModel) View() string {
	var s strings.Builder

	name := m.board.Name
	if name == "" {
		name = "board"
	}
	s.WriteString(StyleTitle.Render(name))
	s.WriteString(StyleDim.Render(fmt.Sprintf("  %.0f×%.0f  snap %s", float64(m.board.Canvas.Width), float64(m.board.Canvas.Height), onOff(m.snap))))
	s.WriteString("\n")
	s.WriteString(StyleDim.Render("←↑↓→ move  shift resize  [ ] rotate  tab next  s snap  ⏎ commit  esc cancel  w write  q quit"))
	s.WriteString("\n\n")

	rows := make([][]string, len(m.board.Blocks))
	for i := range m.board.Blocks {
		b := m.block(i)
		r := b.Rect(board.DefaultBlockSize)
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows[i] = []string{
			cursor, b.ID,
			formatPercent(r.X), formatPercent(r.Y),
			b.Width.String(), b.Height.String(),
			formatDegrees(b.Rotation),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Block", "X", "Y", "W", "H", "Rot").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case row == m.cursor && m.session != nil:
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			case row == m.cursor:
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})
	s.WriteString(t.Render())
	s.WriteString("\n")

	if m.session != nil {
		s.WriteString(StyleDim.Render(fmt.Sprintf("%s %s · frame %d", m.session.Kind(), m.session.BlockID(), m.session.Frames())))
		s.WriteString("\n")
		if g := guideTable(m.frame.Guidelines, m.frame.Distances); g != "" {
			s.WriteString(g)
			s.WriteString("\n")
		}
	}
	if m.status != "" {
		s.WriteString(StyleWarning.Render(m.status))
		s.WriteString("\n")
	}
	return s.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
