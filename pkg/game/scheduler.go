package game

import (
	"log"
	"math"
	"time"
)

// TimerID 标识调度器中的一个定时任务
// 零值表示无效任务（调度失败或尚未调度）
type TimerID uint64

// timerEntry 调度器内部的一条定时记录
type timerEntry struct {
	id       TimerID
	due      time.Duration // 到期时刻（调度器时钟）
	interval time.Duration // 重复间隔，0 表示一次性任务
	seq      uint64        // 调度顺序，同一时刻到期时按此排序
	fn       func()
}

// Scheduler 单线程协作式定时器
//
// 时间只在 Update/Advance 中推进，由游戏主循环每帧驱动（通常 1/60 秒）。
// 所有"延迟执行"和"周期执行"都表示为调度器中的条目，而不是阻塞等待，
// 因此回调之间不会并发执行，测试中也无需 sleep。
//
// 规则：
//   - 到期条目按到期时刻顺序触发，同一时刻按调度顺序触发
//   - 回调中可以继续调度或取消条目；回调执行期间 Now() 等于该条目的到期时刻
//   - 已取消的条目不会再触发；取消未知或已触发的条目是空操作
//   - 周期条目在一次较大的 Update 中会按经过的间隔数补触发
type Scheduler struct {
	now     time.Duration
	nextID  TimerID
	nextSeq uint64
	entries []*timerEntry
}

// NewScheduler 创建一个时钟为 0、没有任何条目的调度器
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now 返回调度器当前时钟
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After 在 delay 之后执行一次 fn
//
// 参数：
//   - delay: 延迟时间，小于 0 按 0 处理
//   - fn: 到期时调用的回调
//
// 返回：
//   - TimerID: 可用于 Cancel 的任务标识
func (s *Scheduler) After(delay time.Duration, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	return s.add(delay, 0, fn)
}

// Every 每隔 interval 执行一次 fn，直到被取消
// interval 必须大于 0，否则不调度并返回零值 TimerID
func (s *Scheduler) Every(interval time.Duration, fn func()) TimerID {
	if interval <= 0 {
		log.Printf("[Scheduler] Warning: ignoring repeating timer with non-positive interval %v", interval)
		return 0
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) TimerID {
	s.nextID++
	s.nextSeq++
	s.entries = append(s.entries, &timerEntry{
		id:       s.nextID,
		due:      s.now + delay,
		interval: interval,
		seq:      s.nextSeq,
		fn:       fn,
	})
	return s.nextID
}

// Cancel 取消一个尚未触发的任务
// 返回 true 表示确实取消了一个待触发的任务
func (s *Scheduler) Cancel(id TimerID) bool {
	if id == 0 {
		return false
	}
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Pending 检查任务是否仍在等待触发
func (s *Scheduler) Pending(id TimerID) bool {
	if id == 0 {
		return false
	}
	for _, e := range s.entries {
		if e.id == id {
			return true
		}
	}
	return false
}

// Len 返回待触发的任务数量
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Clear 取消所有任务（时钟保持不变）
func (s *Scheduler) Clear() {
	s.entries = nil
}

// Update 按秒推进时钟，与 Scene.Update 的 deltaTime 单位一致
// deltaTime 会四舍五入到纳秒，避免 1/60 秒累加时的截断误差
func (s *Scheduler) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	s.Advance(time.Duration(math.Round(deltaTime * float64(time.Second))))
}

// Advance 推进时钟 d，并按顺序触发所有到期的任务
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := s.now + d

	for {
		e := s.nextDue(target)
		if e == nil {
			break
		}

		s.now = e.due
		if e.interval > 0 {
			e.due += e.interval
			s.nextSeq++
			e.seq = s.nextSeq
		} else {
			s.Cancel(e.id)
		}
		e.fn()
	}

	s.now = target
}

// nextDue 找出到期时刻不晚于 target 的最早任务
func (s *Scheduler) nextDue(target time.Duration) *timerEntry {
	var best *timerEntry
	for _, e := range s.entries {
		if e.due > target {
			continue
		}
		if best == nil || e.due < best.due || (e.due == best.due && e.seq < best.seq) {
			best = e
		}
	}
	return best
}
