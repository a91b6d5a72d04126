// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package dtc

import (
	"encoding/csv"
	"io"
)

// recordWriter writes one pseudocode operation per CSV record
// (spec.md §4.7, §6), quoting names and values the same way RFC-4180
// requires (testable property S6), the way original_source/dtc.c's own
// csvPrt escapes values on the way out.
type recordWriter struct {
	w *csv.Writer
}

func newRecordWriter(w io.Writer) *recordWriter {
	return &recordWriter{w: csv.NewWriter(w)}
}

func (rw *recordWriter) write(fields ...string) error {
	return rw.w.Write(fields)
}

func (rw *recordWriter) flush() error {
	rw.w.Flush()
	return rw.w.Error()
}
