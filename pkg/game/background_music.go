package game

import (
	"log"

	"github.com/google/uuid"
)

// SessionFactory 创建背景音乐会话
// 控制器在 Mount 时调用一次；返回的资源应当循环播放
type SessionFactory func() (AudioSession, error)

// BackgroundMusic 背景音乐控制器
//
// 职责：
//   - 在整个程序生命周期内维护唯一一个循环播放的音乐资源
//   - 挂载时以静音、音量 0 尝试自动播放，失败只记录日志
//   - 首次全局点击/触摸时取消静音并淡入（一次性监听）
//   - 开关按钮：播放中则淡出并暂停，否则播放并淡入
//   - 同一资源同一时间只有一个渐变任务，后到的请求生效
//
// 控制器拥有自己的调度器，由 App 每帧调用 Update 驱动。
type BackgroundMusic struct {
	scheduler  *Scheduler
	newSession SessionFactory
	logger     *log.Logger
	id         string

	session   AudioSession
	mounted   bool
	listening bool // 首次交互监听是否仍然注册
	playing   bool
	fade      *fadeTask
}

// NewBackgroundMusic 创建背景音乐控制器
//
// 参数：
//   - factory: 音乐会话工厂，Mount 时调用
//   - logger: 诊断日志输出，为 nil 时使用标准 logger
func NewBackgroundMusic(factory SessionFactory, logger *log.Logger) *BackgroundMusic {
	if logger == nil {
		logger = log.Default()
	}
	return &BackgroundMusic{
		scheduler:  NewScheduler(),
		newSession: factory,
		logger:     logger,
		id:         uuid.NewString(),
	}
}

// ID 返回本次会话的诊断标识（出现在每条 [Audio] 日志中）
func (m *BackgroundMusic) ID() string {
	return m.id
}

func (m *BackgroundMusic) logf(format string, args ...interface{}) {
	m.logger.Printf("[Audio] session %s: "+format, append([]interface{}{m.id}, args...)...)
}

// Mount 创建音乐资源并尝试静音自动播放
// 重复调用无效果
func (m *BackgroundMusic) Mount() {
	if m.mounted {
		return
	}

	var session AudioSession
	var err error
	if m.newSession != nil {
		session, err = m.newSession()
	} else {
		err = ErrNoAudioResource
	}
	if err != nil || session == nil {
		m.logf("Warning: no music track, continuing silent: %v", err)
		session = NewSilentSession()
	}

	session.SetVolume(0)
	session.SetMuted(true)

	m.session = session
	m.mounted = true
	m.listening = true

	if err := session.Play(); err != nil {
		m.logf("Autoplay blocked until interaction: %v", err)
	}
}

// HandleInteraction 处理一次全局点击或触摸
//
// 仅第一次调用生效：取消静音，若尚未处于播放状态则开始淡入。
// 之后监听即被移除。
func (m *BackgroundMusic) HandleInteraction() {
	if !m.mounted || !m.listening {
		return
	}
	m.listening = false

	m.session.SetMuted(false)
	if m.playing {
		return
	}

	// 自动播放被拒绝时资源并未运行，交互后重新请求播放
	if !m.session.IsPlaying() {
		if err := m.session.Play(); err != nil {
			m.logf("Playback blocked: %v", err)
			return
		}
	}

	m.startFade(FadeIn)
	m.playing = true
}

// Toggle 处理音乐开关按钮
//
// 播放中（且不在淡出）时开始淡出；否则请求播放并淡入。
// 播放请求被拒绝时只记录日志，状态保持为未播放。
func (m *BackgroundMusic) Toggle() {
	if !m.mounted {
		return
	}

	if m.playing && !m.fadingOut() {
		m.startFade(FadeOut)
		return
	}

	if err := m.session.Play(); err != nil {
		m.logf("Playback blocked: %v", err)
		return
	}
	m.session.SetMuted(false)
	m.startFade(FadeIn)
	m.playing = true
}

// Unmount 暂停资源并移除仍在注册的监听
func (m *BackgroundMusic) Unmount() {
	if !m.mounted {
		return
	}
	m.cancelFade()
	m.scheduler.Clear()
	m.session.Pause()
	m.listening = false
	m.playing = false
	m.mounted = false
}

// Update 推进渐变调度器
func (m *BackgroundMusic) Update(deltaTime float64) {
	m.scheduler.Update(deltaTime)
}

// IsPlaying 返回控制器的播放状态（开关按钮显示依据）
func (m *BackgroundMusic) IsPlaying() bool {
	return m.playing
}

// Volume 返回当前音量
func (m *BackgroundMusic) Volume() float64 {
	if m.session == nil {
		return 0
	}
	return m.session.Volume()
}

// IsMounted 返回是否已挂载
func (m *BackgroundMusic) IsMounted() bool {
	return m.mounted
}

// IsListening 返回首次交互监听是否仍然注册
func (m *BackgroundMusic) IsListening() bool {
	return m.listening
}

// ActiveFade 返回正在进行的渐变方向
func (m *BackgroundMusic) ActiveFade() (FadeDirection, bool) {
	if m.fade == nil {
		return 0, false
	}
	return m.fade.direction, true
}

func (m *BackgroundMusic) fadingOut() bool {
	return m.fade != nil && m.fade.direction == FadeOut
}

// startFade 开始新的渐变，先取消槽位中的旧任务
func (m *BackgroundMusic) startFade(direction FadeDirection) {
	m.cancelFade()

	task := newFadeTask(direction)
	task.timer = m.scheduler.Every(task.interval, func() {
		m.stepFade(task)
	})
	m.fade = task
}

func (m *BackgroundMusic) cancelFade() {
	if m.fade == nil {
		return
	}
	m.scheduler.Cancel(m.fade.timer)
	m.fade = nil
}

// stepFade 执行一次渐变步进
func (m *BackgroundMusic) stepFade(task *fadeTask) {
	if m.fade != task {
		return
	}

	volume, done := task.next(m.session.Volume())
	m.session.SetVolume(volume)
	if !done {
		return
	}

	m.cancelFade()
	if task.direction == FadeOut {
		m.session.Pause()
		m.playing = false
	}
}
