package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"planreport/internal/layout"
	"planreport/internal/layout/layouttest"
)

func TestConfigUsableArea(t *testing.T) {
	cfg := layout.DefaultConfig()

	assert.InDelta(t, cfg.PageWidth-2*cfg.Margin, cfg.UsableWidth(), 1e-9)
	assert.InDelta(t, cfg.PageHeight-2*cfg.Margin, cfg.UsableHeight(), 1e-9)
	assert.InDelta(t, 495.28, cfg.UsableWidth(), 1e-9)
}

func TestConfigHeaderClearsLogo(t *testing.T) {
	cfg := layout.DefaultConfig()

	assert.Equal(t, 70.0, cfg.HeaderHeight)
	assert.GreaterOrEqual(t, cfg.Margin+cfg.HeaderHeight, cfg.LogoY+cfg.LogoSize,
		"content after the header must start below the logo box")
}

func TestCursor(t *testing.T) {
	cfg := layout.DefaultConfig()
	rec := layouttest.NewRecorder()
	c := layout.NewCursor(cfg, rec)

	assert.Equal(t, cfg.Margin, c.Y())
	assert.Equal(t, 0, c.Page())

	c.Advance(100)
	assert.InDelta(t, 150, c.Y(), 1e-9)

	tests := []struct {
		name   string
		safety float64
		want   float64
	}{
		{"row safety", cfg.RowSafety, 841.89 - 50 - 150 - 100},
		{"footer safety", cfg.FooterSafety, 841.89 - 50 - 150 - 80},
		{"table safety", cfg.TableSafety, 841.89 - 50 - 150 - 700},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, c.Remaining(tt.safety), 1e-9)
		})
	}

	assert.True(t, c.Fits(100, cfg.RowSafety))
	assert.False(t, c.Fits(600, cfg.RowSafety))

	c.PageBreak()
	assert.Equal(t, cfg.Margin, c.Y())
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 2, rec.Pages())
	assert.Len(t, rec.Filter(func(op layouttest.Op) bool { return op.Kind == layouttest.OpAddPage }), 1)
}

func TestCoarseTableCheck(t *testing.T) {
	cfg := layout.DefaultConfig()
	c := layout.NewCursor(cfg, layouttest.NewRecorder())

	// The table only starts on a page whose cursor is within ~42pt of the top margin.
	assert.GreaterOrEqual(t, c.Remaining(cfg.TableSafety), 0.0)
	c.Advance(100)
	assert.Less(t, c.Remaining(cfg.TableSafety), 0.0)
}
