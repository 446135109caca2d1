package game

// Input 一帧的玩家输入
// 桌面、移动端和终端前端各自采集后转换成同一结构，模拟层不关心输入来源
type Input struct {
	// MoveX, MoveY 移动方向：键盘每轴为 -1/0/1，摇杆为单位向量
	MoveX, MoveY float64

	// AimX, AimY 瞄准点（场地坐标）
	AimX, AimY float64
	// HasAim 为 false 时不射击（移动端尚未触摸右半屏）
	HasAim bool

	// Pause 本帧按下暂停键
	Pause bool
	// Restart 本帧按下重新开始键
	Restart bool

	// 作弊组合键是否按住
	CheatToBoss      bool // 1 + T
	CheatToFinalBoss bool // T + 2
}
