package game

import (
	"time"

	"github.com/decker502/invite/pkg/config"
)

// FadeDirection 渐变方向
type FadeDirection int

const (
	// FadeIn 音量逐步升高到上限后保持
	FadeIn FadeDirection = iota
	// FadeOut 音量逐步降到 0，然后暂停资源
	FadeOut
)

func (d FadeDirection) String() string {
	if d == FadeIn {
		return "fade-in"
	}
	return "fade-out"
}

// fadeTask 一个正在进行的音量渐变
//
// 每个音频资源只有一个 fadeTask 槽位：开始新的渐变会先取消旧任务，
// 旧任务的回调即使仍在本帧的触发队列中，也会因为令牌不匹配而直接返回。
type fadeTask struct {
	direction FadeDirection
	step      float64
	interval  time.Duration
	target    float64
	timer     TimerID
}

func newFadeTask(direction FadeDirection) *fadeTask {
	if direction == FadeIn {
		return &fadeTask{
			direction: FadeIn,
			step:      config.MusicFadeStep,
			interval:  config.MusicFadeInInterval,
			target:    config.MusicVolumeCeiling,
		}
	}
	return &fadeTask{
		direction: FadeOut,
		step:      config.MusicFadeStep,
		interval:  config.MusicFadeOutInterval,
		target:    config.MusicVolumeFloor,
	}
}

// fadeEpsilon 浮点累加误差容忍度，落在目标附近时直接吸附到目标值
const fadeEpsilon = 1e-9

// next 计算下一步音量
//
// 返回：
//   - float64: 新音量（已截断到目标值）
//   - bool: 是否已经到达目标
func (f *fadeTask) next(current float64) (float64, bool) {
	if f.direction == FadeIn {
		v := current + f.step
		if v >= f.target-fadeEpsilon {
			return f.target, true
		}
		return v, false
	}

	v := current - f.step
	if v <= f.target+fadeEpsilon {
		return f.target, true
	}
	return v, false
}
