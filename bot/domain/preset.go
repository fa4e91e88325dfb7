package domain

import "time"

// AdvancedConfig は最高難易度でのみ有効な追加挙動の設定です。
type AdvancedConfig struct {
	StrafeInterval  time.Duration // ストレイフ方向を切り替える間隔
	JumpPulse       time.Duration // ジャンプキーを押し続ける時間
	JumpChance      float64       // ストレイフtickごとにジャンプする確率 [0,1]
	HealThreshold   float64       // この体力を下回ったら回復する
	HealCooldown    time.Duration // 回復開始から次の回復までの最短間隔
	AimHeightOffset float64       // 照準を合わせる高さオフセット
}

// DifficultyPreset は難易度ごとのタイミング・挙動パラメータです。
// イミュータブルで、同じ難易度を使う全ボット間で共有されます。
type DifficultyPreset struct {
	Name           string
	ScanInterval   time.Duration
	ReactionDelay  [2]time.Duration // 攻撃までの反応遅延の範囲。大小の順序は問わない
	AttackDuration time.Duration    // 交戦を自動解除するまでの時間。0 なら解除しない
	MaintainSprint bool
	Advanced       *AdvancedConfig // 最高難易度のみ非nil
}

// presets は起動時に一度だけ構築される難易度レジストリです。実行時に変更されることはありません。
var presets = map[string]*DifficultyPreset{
	"easy": {
		Name:           "easy",
		ScanInterval:   4500 * time.Millisecond,
		ReactionDelay:  [2]time.Duration{1500 * time.Millisecond, 3000 * time.Millisecond},
		AttackDuration: 3000 * time.Millisecond,
		MaintainSprint: false,
	},
	"normal": {
		Name:           "normal",
		ScanInterval:   3500 * time.Millisecond,
		ReactionDelay:  [2]time.Duration{900 * time.Millisecond, 2200 * time.Millisecond},
		AttackDuration: 4500 * time.Millisecond,
		MaintainSprint: false,
	},
	"hard": {
		Name:           "hard",
		ScanInterval:   2500 * time.Millisecond,
		ReactionDelay:  [2]time.Duration{400 * time.Millisecond, 1100 * time.Millisecond},
		AttackDuration: 6000 * time.Millisecond,
		MaintainSprint: true,
	},
	"hardcore": {
		Name:           "hardcore",
		ScanInterval:   1200 * time.Millisecond,
		ReactionDelay:  [2]time.Duration{150 * time.Millisecond, 400 * time.Millisecond},
		AttackDuration: 0,
		MaintainSprint: true,
		Advanced: &AdvancedConfig{
			StrafeInterval:  500 * time.Millisecond,
			JumpPulse:       200 * time.Millisecond,
			JumpChance:      0.35,
			HealThreshold:   14,
			HealCooldown:    4000 * time.Millisecond,
			AimHeightOffset: 1.6,
		},
	},
}

// PresetByName は難易度名からプリセットを取得します。
func PresetByName(name string) (*DifficultyPreset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames は定義済みの難易度名を返します。
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
