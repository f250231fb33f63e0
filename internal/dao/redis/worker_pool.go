package redis

import (
	"sync"

	"go.uber.org/zap"
)

// startWorkers 启动 n 个消费 taskChan 的 Worker
func startWorkers(taskChan chan func(), n int, wg *sync.WaitGroup) {
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChan {
				runTask(task)
			}
		}()
	}
}

// runTask 单个任务 panic 不影响 Worker 继续消费
func runTask(task func()) {
	if task == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			zap.L().Error("cache worker panic", zap.Any("recover", rec))
		}
	}()
	task()
}

// submit 非阻塞提交，通道满时降级为同步执行
func submit(taskChan chan func(), action func()) {
	select {
	case taskChan <- action:
	default:
		zap.L().Warn("cache task channel full, executing synchronously")
		runTask(action)
	}
}
