package log

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inconshreveable/log15"
)

const (
	logFileName   = "basex.log" // 最新日志存储文件
	fPrefix       = "basex"
	RotateLogSize = 64 * 1024 * 1024 // 64M
	BackUpCount   = 19               // 滚动日志文件数
)

// openLogFile creates the directory of logFilePath if needed and opens the
// file for appending.
func openLogFile(logFilePath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logFilePath), os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

// FileHandler 写入文件handler
func FileHandler(logFilePath string, fmtr log15.Format) log15.Handler {
	f, err := openLogFile(logFilePath)
	if err != nil {
		panic(err)
	}
	return WriteFileHandler(logFilePath, f, fmtr)
}

// listenAndRotateLog reopens the log file after rotating it once it grows
// beyond RotateLogSize.
func listenAndRotateLog(logFilePath string, f *os.File) *os.File {
	if info, err := f.Stat(); err == nil {
		if info.Size() >= RotateLogSize {
			f.Close()
			rotateLogFile(logFilePath)
			f, err = openLogFile(logFilePath)
			if err != nil {
				panic(err)
			}
			return f
		}
	}
	return f
}

// WriteFileHandler writes every record to f before returning, so nothing is
// lost when a short command exits.
func WriteFileHandler(logFilePath string, f *os.File, fmtr log15.Format) log15.Handler {
	h := log15.FuncHandler(func(r *log15.Record) error {
		f = listenAndRotateLog(logFilePath, f)
		_, err := f.Write(fmtr.Format(r))
		return err
	})
	return log15.LazyHandler(log15.SyncHandler(h))
}

// rotateLogFile 滚动日志文件
func rotateLogFile(logFilePath string) {
	logDir := filepath.Dir(logFilePath)
	for j := BackUpCount; j >= 1; j-- {
		curFileName := filepath.Join(logDir, fmt.Sprintf("%s_%d.log", fPrefix, j))
		k := j - 1
		preFileName := filepath.Join(logDir, fmt.Sprintf("%s_%d.log", fPrefix, k))

		if k == 0 {
			preFileName = logFilePath
		}
		if _, err := os.Stat(curFileName); err == nil {
			os.Remove(curFileName)
		}
		if _, err := os.Stat(preFileName); err == nil {
			os.Rename(preFileName, curFileName)
		}
	}
}
