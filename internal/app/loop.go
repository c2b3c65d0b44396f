package app

import (
	"fmt"

	"github.com/henri123lemoine/periodic/internal/debug"
	"github.com/henri123lemoine/periodic/internal/surface"
)

// TooSmallError reports a terminal smaller than the table and panel need.
type TooSmallError struct {
	Rows, Cols         int
	NeedRows, NeedCols int
}

func (e *TooSmallError) Error() string {
	return fmt.Sprintf("Terminal too small: %dx%d, need %dx%d minimum.",
		e.Rows, e.Cols, e.NeedRows, e.NeedCols)
}

// Run drives s on scr until the session terminates or scr stops delivering
// input. The size is checked once before the first frame. scr is always
// restored before Run returns.
func Run(s *Session, scr surface.Surface) error {
	defer scr.Fini()

	rows, cols := scr.Size()
	if err := s.CheckSize(rows, cols); err != nil {
		return err
	}
	scr.HideCursor()

	for s.Status() == StatusRunning {
		done := debug.Timed("frame")
		s.Draw(scr)
		scr.Show()
		done()

		k, ok := scr.PollKey()
		if !ok {
			debug.Log("input closed")
			break
		}
		s.HandleKey(k)
	}
	return nil
}
