package log

import (
	"bufio"
	"os"
	"strings"
	"testing"
)

var logFile = "octavia-lib-test.log"

func TestMain(m *testing.M) {
	_ = os.Remove(logFile)
	Init(logFile, "debug")
	rc := m.Run()
	cleanUP()
	os.Exit(rc)
}

func cleanUP() {
	_ = os.Remove(logFile)
}

func existInTxtLog(msg, function string) bool {
	file, err := os.Open(logFile)
	if err != nil {
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "msg=\""+msg) && strings.Contains(line, "function="+function) {
			return true
		}
	}
	return false
}

func TestDebug(t *testing.T) {
	str := "test Debug"
	Debug(str)
	if !existInTxtLog(str, "TestDebug") {
		t.Error("test debug: logged msg not found")
	}
}

func TestDebugf(t *testing.T) {
	Debugf("test %s", "Debugf")
	if !existInTxtLog("test Debugf", "TestDebugf") {
		t.Error("test debugf: logged msg not found")
	}
}

func TestInfo(t *testing.T) {
	str := "test Info"
	Info(str)
	if !existInTxtLog(str, "TestInfo") {
		t.Error("test info: logged msg not found")
	}
}

func TestInfof(t *testing.T) {
	Infof("test %s", "Infof")
	if !existInTxtLog("test Infof", "TestInfof") {
		t.Error("test infof: logged msg not found")
	}
}

func TestWarn(t *testing.T) {
	str := "test Warn"
	Warn(str)
	if !existInTxtLog(str, "TestWarn") {
		t.Error("test warn: logged msg not found")
	}
}

func TestWarnf(t *testing.T) {
	Warnf("test %s", "Warnf")
	if !existInTxtLog("test Warnf", "TestWarnf") {
		t.Error("test warnf: logged msg not found")
	}
}

func TestError(t *testing.T) {
	str := "test Error"
	Error(str)
	if !existInTxtLog(str, "TestError") {
		t.Error("test error: logged msg not found")
	}
}

func TestErrorf(t *testing.T) {
	Errorf("test %s", "Errorf")
	if !existInTxtLog("test Errorf", "TestErrorf") {
		t.Error("test errorf: logged msg not found")
	}
}

// keep this test last, it changes the configured level
func TestInitLevelFallback(t *testing.T) {
	Init(logFile, "chatty")
	Debug("suppressed at info level")
	Info("still logged at info level")
	if existInTxtLog("suppressed at info level", "TestInitLevelFallback") {
		t.Error("debug message was logged after falling back to info level")
	}
	if !existInTxtLog("still logged at info level", "TestInitLevelFallback") {
		t.Error("info message was not logged after falling back to info level")
	}
}
