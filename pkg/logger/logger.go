// Package logger is the levelled console logger used by the lvnav command.
//
// Messages are formatted on the calling goroutine and handed to a single
// writer goroutine through a buffered channel. CloseLogger drains whatever
// is still queued before returning, so it must be called once before exit.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	DEBUG = iota
	INFO
	WARN
	ERROR
)

var LevelMap = map[int][]byte{
	DEBUG: []byte("DEBUG"),
	INFO:  []byte("INFO"),
	WARN:  []byte("WARN"),
	ERROR: []byte("ERROR"),
}

// ParseLogLevel maps a case-insensitive level name to its constant.
func ParseLogLevel(level string) (int, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return 0, fmt.Errorf("logger: unknown log level: %q", level)
	}
}

var (
	LeftBracket  = []byte("[")
	RightBracket = []byte("]")
	Space        = []byte(" ")
	Colon        = []byte(":")
	FuncBracket  = []byte("()")
	LineFeed     = []byte("\n")
)

var (
	RED     = []byte{27, 91, 51, 49, 109}
	GREEN   = []byte{27, 91, 51, 50, 109}
	YELLOW  = []byte{27, 91, 51, 51, 109}
	BLUE    = []byte{27, 91, 51, 52, 109}
	MAGENTA = []byte{27, 91, 51, 53, 109}
	CYAN    = []byte{27, 91, 51, 54, 109}
	RESET   = []byte{27, 91, 48, 109}
)

var (
	LOG  *Logger = nil
	CONF *Config = nil
)

const (
	LogInfoChanSize  = 1000
	MaxWriteCacheNum = 1000
)

type Config struct {
	AppName      string
	Level        int
	TrackLine    bool
	DisableColor bool
	Output       io.Writer // defaults to os.Stderr
}

type Logger struct {
	LogInfoChan   chan *LogInfo
	WriteBuf      []byte
	WriteCacheNum int32
	CloseChan     chan struct{}
}

type LogInfo struct {
	Time      time.Time
	Level     int
	Msg       *[]byte
	FileName  string
	FuncName  string
	Line      int
	TrackLine bool
}

// InitLogger starts the writer goroutine. A nil config logs everything to
// stderr with caller tracking on.
func InitLogger(config *Config) {
	LOG = new(Logger)

	if config == nil {
		config = &Config{
			AppName:      "lvnav",
			Level:        DEBUG,
			TrackLine:    true,
			DisableColor: false,
		}
	}
	CONF = config
	if CONF.Output == nil {
		CONF.Output = os.Stderr
	}

	LOG.LogInfoChan = make(chan *LogInfo, LogInfoChanSize)
	LOG.WriteBuf = make([]byte, 0)
	LOG.WriteCacheNum = 0
	LOG.CloseChan = make(chan struct{})
	go LOG.doLog()
}

// CloseLogger flushes the queue and stops the writer goroutine.
func CloseLogger() {
	LOG.CloseChan <- struct{}{}
	<-LOG.CloseChan
}

func (l *Logger) doLog() {
	var logBuf bytes.Buffer
	timeBuf := make([]byte, 0, 64)
	exit := false
	exitCountDown := 0
	for {
		if exit && exitCountDown == 0 {
			l.flush()
			l.CloseChan <- struct{}{}
			return
		}
		select {
		case <-l.CloseChan:
			exit = true
			exitCountDown = len(l.LogInfoChan)
		case logInfo := <-l.LogInfoChan:
			if !CONF.DisableColor {
				logBuf.Write(CYAN)
			}
			logBuf.Write(LeftBracket)
			logBuf.Write(logInfo.Time.AppendFormat(timeBuf, "2006-01-02 15:04:05.000"))
			logBuf.Write(RightBracket)
			if !CONF.DisableColor {
				logBuf.Write(RESET)
			}
			logBuf.Write(Space)

			if !CONF.DisableColor {
				switch logInfo.Level {
				case DEBUG:
					logBuf.Write(BLUE)
				case INFO:
					logBuf.Write(GREEN)
				case WARN:
					logBuf.Write(YELLOW)
				case ERROR:
					logBuf.Write(RED)
				}
			}
			logBuf.Write(LeftBracket)
			logBuf.Write(LevelMap[logInfo.Level])
			logBuf.Write(RightBracket)
			if !CONF.DisableColor {
				logBuf.Write(RESET)
			}
			logBuf.Write(Space)

			if !CONF.DisableColor && logInfo.Level == ERROR {
				logBuf.Write(RED)
				logBuf.Write(*logInfo.Msg)
				logBuf.Write(RESET)
			} else {
				logBuf.Write(*logInfo.Msg)
			}

			if logInfo.TrackLine {
				logBuf.Write(Space)
				if !CONF.DisableColor {
					logBuf.Write(MAGENTA)
				}
				logBuf.Write(LeftBracket)
				logBuf.WriteString(logInfo.FileName)
				logBuf.Write(Colon)
				logBuf.WriteString(strconv.Itoa(logInfo.Line))
				logBuf.Write(Space)
				logBuf.WriteString(logInfo.FuncName)
				logBuf.Write(FuncBracket)
				logBuf.Write(RightBracket)
				if !CONF.DisableColor {
					logBuf.Write(RESET)
				}
			}

			logBuf.Write(LineFeed)

			l.writeLog(logBuf.Bytes())
			putBuf(logInfo.Msg)
			logInfoPool.Put(logInfo)
			logBuf.Reset()
			timeBuf = timeBuf[0:0]
			if exit {
				exitCountDown--
			}
		}
	}
}

// writeLog batches lines while more are queued.
func (l *Logger) writeLog(logData []byte) {
	l.WriteBuf = append(l.WriteBuf, logData...)
	l.WriteCacheNum++
	if len(l.LogInfoChan) != 0 && l.WriteCacheNum < MaxWriteCacheNum {
		return
	}
	l.flush()
}

func (l *Logger) flush() {
	if len(l.WriteBuf) == 0 {
		return
	}
	_, _ = CONF.Output.Write(l.WriteBuf)
	l.WriteBuf = l.WriteBuf[0:0]
	l.WriteCacheNum = 0
}

var bufPool = sync.Pool{New: func() any { return new([]byte) }}

func getBuf() *[]byte {
	p := bufPool.Get().(*[]byte)
	*p = (*p)[0:0]
	return p
}

func putBuf(p *[]byte) {
	if cap(*p) > 64<<10 {
		*p = nil
	}
	bufPool.Put(p)
}

var logInfoPool = sync.Pool{New: func() any { return new(LogInfo) }}

func formatLog(level int, msg string, param []any) {
	logInfo := logInfoPool.Get().(*LogInfo)
	logInfo.Time = time.Now()
	logInfo.Level = level
	buf := getBuf()
	*buf = fmt.Appendf(*buf, msg, param...)
	logInfo.Msg = buf
	logInfo.TrackLine = CONF.TrackLine
	if CONF.TrackLine {
		logInfo.FileName, logInfo.Line, logInfo.FuncName = LOG.getLineFunc()
	}
	LOG.LogInfoChan <- logInfo
}

func Debug(msg string, param ...any) {
	if CONF.Level > DEBUG {
		return
	}
	formatLog(DEBUG, msg, param)
}

func Info(msg string, param ...any) {
	if CONF.Level > INFO {
		return
	}
	formatLog(INFO, msg, param)
}

func Warn(msg string, param ...any) {
	if CONF.Level > WARN {
		return
	}
	formatLog(WARN, msg, param)
}

func Error(msg string, param ...any) {
	if CONF.Level > ERROR {
		return
	}
	formatLog(ERROR, msg, param)
}

// getLineFunc reports the caller of Debug/Info/Warn/Error.
func (l *Logger) getLineFunc() (fileName string, line int, funcName string) {
	var pc uintptr
	var file string
	var ok bool
	pc, file, line, ok = runtime.Caller(3)
	if !ok {
		return "???", -1, "???"
	}
	fileName = path.Base(file)
	funcName = runtime.FuncForPC(pc).Name()
	split := strings.Split(funcName, ".")
	if len(split) != 0 {
		funcName = split[len(split)-1]
	}
	return fileName, line, funcName
}

func Stack() string {
	buf := make([]byte, 1024)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			return string(buf[:n])
		}
		buf = make([]byte, 2*len(buf))
	}
}
