package configwatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"eduguide_backend/internal/config"
	"eduguide_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDelay = time.Second

type ConfigReloader func(cfg *config.Config)

// WatchConfig 监听配置文件所在目录，写入或重建后防抖重新加载；ctx 取消后返回
func WatchConfig(ctx context.Context, configPath string, reloader ConfigReloader) error {
	return watch(ctx, configPath, debounceDelay, config.LoadConfig, reloader)
}

func watch(ctx context.Context, configPath string, delay time.Duration, load func(dir string) (*config.Config, error), reloader ConfigReloader) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	// 监听目录，编辑器常以重命名方式保存文件
	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}

	// Go 1.23 起 Stop/Reset 会丢弃未读取的触发值，无需手动排空
	timer := time.NewTimer(delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// 防抖处理
			timer.Reset(delay)
		case <-timer.C:
			newCfg, err := load(dir)
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			logger.Log.Info("Config reloaded", zap.String("file", absPath))
			reloader(newCfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}
