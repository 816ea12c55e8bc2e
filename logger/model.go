/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type logrusLogger struct {
	entry *logrus.Entry
}

func newLogrusLogger(lvl Level, w io.Writer, field Fields) *logrusLogger {
	if w == nil {
		w = os.Stderr
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl.Logrus())
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &logrusLogger{entry: l.WithFields(field.logrus())}
}

func (g *logrusLogger) SetLevel(lvl Level) {
	g.entry.Logger.SetLevel(lvl.Logrus())
}

func (g *logrusLogger) GetLevel() Level {
	switch g.entry.Logger.GetLevel() {
	case logrus.DebugLevel:
		return DebugLevel
	case logrus.InfoLevel:
		return InfoLevel
	case logrus.WarnLevel:
		return WarnLevel
	case logrus.ErrorLevel:
		return ErrorLevel
	case logrus.FatalLevel:
		return FatalLevel
	case logrus.PanicLevel:
		return PanicLevel
	default:
		return InfoLevel
	}
}

func (g *logrusLogger) SetOutput(w io.Writer) {
	g.entry.Logger.SetOutput(w)
}

func (g *logrusLogger) WithFields(field Fields) Logger {
	return &logrusLogger{entry: g.entry.WithFields(field.logrus())}
}

func (g *logrusLogger) Debug(message string, field Fields) {
	g.entry.WithFields(field.logrus()).Debug(message)
}

func (g *logrusLogger) Info(message string, field Fields) {
	g.entry.WithFields(field.logrus()).Info(message)
}

func (g *logrusLogger) Warning(message string, field Fields) {
	g.entry.WithFields(field.logrus()).Warn(message)
}

func (g *logrusLogger) Error(message string, err error, field Fields) {
	if err != nil {
		field = field.Add("error", err.Error())
	}
	g.entry.WithFields(field.logrus()).Error(message)
}

func (g *logrusLogger) Fatal(message string, err error, field Fields) {
	if err != nil {
		field = field.Add("error", err.Error())
	}
	g.entry.WithFields(field.logrus()).Fatal(message)
}
