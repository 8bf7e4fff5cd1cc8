// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package log_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/chunkstack/log"
)

type recordLogger struct {
	entries []string
}

func (l *recordLogger) Debugf(format string, args ...interface{}) { l.record("DEBUG", format, args...) }
func (l *recordLogger) Infof(format string, args ...interface{})  { l.record("INFO", format, args...) }
func (l *recordLogger) Warnf(format string, args ...interface{})  { l.record("WARN", format, args...) }
func (l *recordLogger) Errorf(format string, args ...interface{}) { l.record("ERROR", format, args...) }
func (l *recordLogger) Fatalf(format string, args ...interface{}) { l.record("FATAL", format, args...) }
func (l *recordLogger) Sync() error                               { return nil }

func (l *recordLogger) record(level, format string, args ...interface{}) {
	l.entries = append(l.entries, level+" "+fmt.Sprintf(format, args...))
}

func TestSetLogger(t *testing.T) {
	old := log.DefaultLogger()
	defer log.SetLogger(old)

	rec := &recordLogger{}
	log.SetLogger(rec)
	require.Equal(t, log.DefaultLogger(), rec)

	log.Debugf("debug %d", 1)
	log.Infof("info %d", 2)
	log.Warnf("warn %d", 3)
	log.Errorf("error %d", 4)
	log.Fatalf("fatal %d", 5)
	require.NoError(t, log.Sync())

	assert.Equal(t, []string{
		"DEBUG debug 1",
		"INFO info 2",
		"WARN warn 3",
		"ERROR error 4",
		"FATAL fatal 5",
	}, rec.entries)
}

func TestNewZapLog(t *testing.T) {
	l := log.NewZapLog()
	require.NotNil(t, l)

	l.Debugf("test debug %s", "message")
	l.Infof("test info %s", "message")
	l.Warnf("test warn %s", "message")
	l.Errorf("test error %s", "message")

	l = log.NewZapLogWithCallerSkip(1)
	require.NotNil(t, l)
	l.Infof("caller skip %d", 1)
}
