package scenes

import (
	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keySource 键盘状态来源
// 运行时读取 ebiten，测试时替换为固定按键集合
type keySource interface {
	IsPressed(k ebiten.Key) bool
	IsJustPressed(k ebiten.Key) bool
}

// ebitenKeys 读取真实键盘
type ebitenKeys struct{}

func (ebitenKeys) IsPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) IsJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// 移动键位：WASD 与方向键等价
var (
	keysLeft  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	keysRight = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	keysUp    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	keysDown  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
)

func anyPressed(keys keySource, list []ebiten.Key) bool {
	for _, k := range list {
		if keys.IsPressed(k) {
			return true
		}
	}
	return false
}

// keyboardInput 把键盘状态转换为一帧输入
// 每个轴取值 -1/0/1，斜向移动不做归一化
func keyboardInput(keys keySource) game.Input {
	var in game.Input
	if anyPressed(keys, keysLeft) {
		in.MoveX--
	}
	if anyPressed(keys, keysRight) {
		in.MoveX++
	}
	if anyPressed(keys, keysUp) {
		in.MoveY--
	}
	if anyPressed(keys, keysDown) {
		in.MoveY++
	}

	in.Pause = keys.IsJustPressed(ebiten.KeyP)
	in.Restart = keys.IsJustPressed(ebiten.KeyR)

	t := keys.IsPressed(ebiten.KeyT)
	in.CheatToBoss = t && keys.IsPressed(ebiten.Key1)
	in.CheatToFinalBoss = t && keys.IsPressed(ebiten.Key2)
	return in
}

// applyTwinStick 用触屏摇杆覆盖移动与瞄准
// 摇杆在死区内时保留键盘移动（外接键盘的平板）
func applyTwinStick(in *game.Input, stick *utils.TwinStick) {
	if dx, dy := stick.Direction(); dx != 0 || dy != 0 {
		in.MoveX, in.MoveY = dx, dy
	}
	if x, y, ok := stick.Aim(); ok {
		in.AimX, in.AimY, in.HasAim = x, y, true
	}
}
