// Copyright Safing ICS Technologies GmbH. Use of this source code is governed by the AGPL license that can be found in the LICENSE file.

package log

import (
	"fmt"
)

func writeLine(line *logLine) {
	outputLock.Lock()
	defer outputLock.Unlock()

	fmt.Fprintln(output, formatLine(line, useColor.IsSet()))
}

func writer() {
	defer close(writerDone)

	for {
		// wait until logs need to be processed
		select {
		case <-logsWaiting:
			logsWaitingFlag.UnSet()
		case <-forceEmptyingOfBuffer:
		case <-shutdownSignal:
			writeAll()
			return
		}

		writeAll()
	}
}

// writeAll writes all the logs currently in the buffer.
func writeAll() {
	for {
		select {
		case line := <-logBuffer:
			writeLine(line)
		default:
			return
		}
	}
}
