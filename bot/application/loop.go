package application

import (
	"context"
	"sync/atomic"
	"time"
)

// loop は1セッション分のタスクキューです。タイマーやティッカーのコールバックは
// すべてここを経由してセッションのゴルーチン上で直列に実行されるため、
// セッション内の状態にロックは要りません。
type loop struct {
	ctx    context.Context
	cancel context.CancelFunc
	tasks  chan func()
}

func newLoop() *loop {
	ctx, cancel := context.WithCancel(context.Background())
	return &loop{
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(chan func(), 64),
	}
}

// Tasks は実行待ちタスクのチャネルを返します。セッションループが消費します。
func (l *loop) Tasks() <-chan func() {
	return l.tasks
}

// Post は fn を実行キューに積みます。停止後の呼び出しは破棄されます。
func (l *loop) Post(fn func()) {
	select {
	case l.tasks <- fn:
	case <-l.ctx.Done():
	}
}

// Shutdown はループを停止します。以後、キュー済みを含め一切のタスクが実行されないことを
// 呼び出し側のセッションループと合わせて保証します。
func (l *loop) Shutdown() {
	l.cancel()
}

// loopTimer は一回限りのタイマーです。Stop 後は、発火済みでキューに積まれていても
// 実行されません。
type loopTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

// Stop はタイマーを取り消します。
func (t *loopTimer) Stop() {
	t.stopped.Store(true)
	t.timer.Stop()
}

// AfterFunc は d 経過後に fn をループ上で一度だけ実行するタイマーを作ります。
func (l *loop) AfterFunc(d time.Duration, fn func()) *loopTimer {
	lt := &loopTimer{}
	lt.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if lt.stopped.Load() {
				return
			}
			fn()
		})
	})
	return lt
}

// Every は interval ごとに fn をループ上で実行するティッカーを開始し、
// 停止用の関数を返します。
func (l *loop) Every(interval time.Duration, fn func()) (stop func()) {
	ctx, cancel := context.WithCancel(l.ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Post(fn)
			}
		}
	}()
	return cancel
}
