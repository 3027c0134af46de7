package log

import (
	"fmt"
	"strings"
)

// tag of the records which report a finished operation
var eventTag = "[event log]"

const (
	EncodeEvent   = "[encode event]"
	DecodeEvent   = "[decode event]"
	RegistryEvent = "[registry event]"
)

func Eventf(eventType, formatMsg string, values ...interface{}) {
	detail := fmt.Sprintf(formatMsg, values...)
	msg := strings.Join([]string{eventTag, eventType, detail}, "\t")
	srvLog.Info(msg)
}

func Event(eventType, msg string, ctx ...interface{}) {
	m := strings.Join([]string{eventTag, eventType, msg}, "\t")
	srvLog.Info(m, ctx...)
}
