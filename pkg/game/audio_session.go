package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	// ErrPlaybackRejected 播放请求被运行环境拒绝（例如浏览器要求先有用户交互）
	ErrPlaybackRejected = errors.New("playback rejected")

	// ErrNoAudioResource 无法创建音频资源（音乐文件缺失或无法解码）
	ErrNoAudioResource = errors.New("no audio resource")
)

// AudioSession 单个音频资源的播放会话
//
// 背景音乐控制器是会话的唯一使用者；其他组件不得直接读写播放状态。
// 音量与静音相互独立：静音时保留音量值，取消静音后恢复。
type AudioSession interface {
	// Play 开始或继续播放；被运行环境拒绝时返回 ErrPlaybackRejected
	Play() error
	// Pause 暂停播放
	Pause()
	// IsPlaying 返回底层资源是否正在播放
	IsPlaying() bool
	// SetVolume 设置音量，超出 [0, 1] 的值会被截断
	SetVolume(volume float64)
	// Volume 返回当前音量（不受静音影响）
	Volume() float64
	// SetMuted 设置静音
	SetMuted(muted bool)
	// IsMuted 返回是否静音
	IsMuted() bool
}

// PlayerSession 基于 Ebitengine audio.Player 的会话实现
//
// 播放器应由 ResourceManager.LoadMusic 创建（已包装为无限循环流）。
// audio.Context 尚未就绪时（RunGame 之前，或浏览器首次交互之前）
// Play 同样生效：播放器会排队，等上下文就绪后开始出声。
type PlayerSession struct {
	player  *audio.Player
	volume  float64
	muted   bool
	playing bool
}

// NewPlayerSession 创建播放器会话
//
// 参数：
//   - player: 循环播放的音乐播放器
func NewPlayerSession(player *audio.Player) *PlayerSession {
	return &PlayerSession{
		player: player,
		volume: player.Volume(),
	}
}

// Play 开始播放
// Ebitengine 的播放器不会拒绝播放请求，因此总是返回 nil
func (s *PlayerSession) Play() error {
	s.player.Play()
	s.playing = true
	return nil
}

// Pause 暂停播放
func (s *PlayerSession) Pause() {
	s.player.Pause()
	s.playing = false
}

// IsPlaying 返回播放器是否正在播放
func (s *PlayerSession) IsPlaying() bool {
	return s.playing || s.player.IsPlaying()
}

// SetVolume 设置音量
func (s *PlayerSession) SetVolume(volume float64) {
	s.volume = clampVolume(volume)
	s.apply()
}

// Volume 返回当前音量
func (s *PlayerSession) Volume() float64 {
	return s.volume
}

// SetMuted 设置静音
func (s *PlayerSession) SetMuted(muted bool) {
	s.muted = muted
	s.apply()
}

// IsMuted 返回是否静音
func (s *PlayerSession) IsMuted() bool {
	return s.muted
}

// apply 将逻辑音量与静音状态写入播放器
func (s *PlayerSession) apply() {
	if s.muted {
		s.player.SetVolume(0)
		return
	}
	s.player.SetVolume(s.volume)
}

// silentSession 没有音乐资源时使用的占位会话
// 状态与真实会话一致地变化，但不会发出声音
type silentSession struct {
	volume  float64
	muted   bool
	playing bool
}

// NewSilentSession 创建一个不发声的会话
func NewSilentSession() AudioSession {
	return &silentSession{}
}

func (s *silentSession) Play() error {
	s.playing = true
	return nil
}

func (s *silentSession) Pause()                   { s.playing = false }
func (s *silentSession) IsPlaying() bool          { return s.playing }
func (s *silentSession) SetVolume(volume float64) { s.volume = clampVolume(volume) }
func (s *silentSession) Volume() float64          { return s.volume }
func (s *silentSession) SetMuted(muted bool)      { s.muted = muted }
func (s *silentSession) IsMuted() bool            { return s.muted }

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
