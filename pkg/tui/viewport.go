package tui

import (
	"math"

	"github.com/decker502/zombieshooter/pkg/config"
)

// hudRows 顶部 HUD 占用的行数
const hudRows = 1

// footerRows 底部提示/Boss 血条占用的行数
const footerRows = 1

// Viewport 把场地坐标映射到终端网格
// 场地区域位于 HUD 与底栏之间，横纵分别缩放
type Viewport struct {
	Cols, Rows int           // 终端尺寸
	Field      config.Bounds // 场地尺寸
}

// NewViewport 创建视口
func NewViewport(cols, rows int, field config.Bounds) Viewport {
	return Viewport{Cols: cols, Rows: rows, Field: field}
}

// FieldRows 场地可用的行数
func (v Viewport) FieldRows() int {
	n := v.Rows - hudRows - footerRows
	if n < 1 {
		return 1
	}
	return n
}

func (v Viewport) scale() (sx, sy float64) {
	return float64(v.Cols) / v.Field.Width, float64(v.FieldRows()) / v.Field.Height
}

// ToCell 场地坐标 -> 单元格，超出场地返回 ok=false
func (v Viewport) ToCell(x, y float64) (col, row int, ok bool) {
	sx, sy := v.scale()
	col = int(math.Floor(x * sx))
	row = int(math.Floor(y * sy))
	if col < 0 || col >= v.Cols || row < 0 || row >= v.FieldRows() {
		return col, row + hudRows, false
	}
	return col, row + hudRows, true
}

// ToField 单元格中心 -> 场地坐标
func (v Viewport) ToField(col, row int) (x, y float64) {
	sx, sy := v.scale()
	return (float64(col) + 0.5) / sx, (float64(row-hudRows) + 0.5) / sy
}

// Radii 场地半径在横纵方向上对应的单元格数
func (v Viewport) Radii(r float64) (rx, ry float64) {
	sx, sy := v.scale()
	return r * sx, r * sy
}
