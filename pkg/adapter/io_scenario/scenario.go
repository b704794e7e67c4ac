// 指示: miu200521358
package io_scenario

// Scenario はIK再生シナリオファイルの内容を表す。
type Scenario struct {
	Name     string           `yaml:"name"`
	Model    string           `yaml:"model"`
	Rig      RigSection       `yaml:"rig"`
	Skeleton *SkeletonSection `yaml:"skeleton"`
	Avatars  []string         `yaml:"avatars"`
	Frames   []FrameSection   `yaml:"frames"`

	baseDir string
}

// RigSection はリグ設定を表す。
type RigSection struct {
	GraspOffset    *float64    `yaml:"grasp_offset"`
	ParallelChains bool        `yaml:"parallel_chains"`
	AvatarRoot     string      `yaml:"avatar_root"`
	PoleVector     PoleSection `yaml:"pole_vector"`
}

// PoleSection はポールベクトル設定を表す。
type PoleSection struct {
	Enabled bool      `yaml:"enabled"`
	Weight  *float64  `yaml:"weight"`
	Left    []float64 `yaml:"left"`
	Right   []float64 `yaml:"right"`
}

// SkeletonSection はインライン骨格を表す。
type SkeletonSection struct {
	Name   string         `yaml:"name"`
	Joints []JointSection `yaml:"joints"`
}

// JointSection はインライン骨格の関節を表す。
type JointSection struct {
	Name        string    `yaml:"name"`
	Role        string    `yaml:"role"`
	Parent      string    `yaml:"parent"`
	Translation []float64 `yaml:"translation"`
	Rotation    []float64 `yaml:"rotation"`
}

// FrameSection はフレーム入力を表す。Repeat が2以上の場合は同じ入力を続けて再生する。
type FrameSection struct {
	Status string               `yaml:"status"`
	Left   []float64            `yaml:"left"`
	Right  []float64            `yaml:"right"`
	Pose   map[string][]float64 `yaml:"pose"`
	Repeat int                  `yaml:"repeat"`
}

// BaseDir はシナリオファイルの配置ディレクトリを返す。
func (s *Scenario) BaseDir() string {
	if s == nil {
		return ""
	}
	return s.baseDir
}

// FrameCount は繰り返しを展開したフレーム数を返す。
func (s *Scenario) FrameCount() int {
	if s == nil {
		return 0
	}
	count := 0
	for _, frame := range s.Frames {
		count += frame.repeatCount()
	}
	return count
}

// repeatCount は繰り返し回数を返す。0 は1回として扱う。
func (f FrameSection) repeatCount() int {
	if f.Repeat <= 0 {
		return 1
	}
	return f.Repeat
}
