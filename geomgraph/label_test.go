// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package geomgraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLabelFlip(t *testing.T) {
	l := NewLabel(0, LocBoundary, LocExterior, LocInterior)
	l.Flip()
	if l.Location(0, PosLeft) != LocInterior {
		t.Errorf("left after flip = %v, want interior", l.Location(0, PosLeft))
	}
	if l.Location(0, PosRight) != LocExterior {
		t.Errorf("right after flip = %v, want exterior", l.Location(0, PosRight))
	}
	if l.Location(0, PosOn) != LocBoundary {
		t.Errorf("on after flip = %v, want boundary", l.Location(0, PosOn))
	}
}

func TestLabelMerge(t *testing.T) {
	l := NewLabel(0, LocBoundary, LocExterior, LocInterior)
	o := NewLabel(1, LocBoundary, LocInterior, LocExterior)
	l.Merge(o)

	want := &Label{}
	want.elt[0] = newTopologyLocation(LocBoundary, LocExterior, LocInterior)
	want.elt[1] = newTopologyLocation(LocBoundary, LocInterior, LocExterior)
	if diff := cmp.Diff(want, l, cmp.AllowUnexported(Label{})); diff != "" {
		t.Errorf("merged label mismatch (-want +got):\n%s", diff)
	}

	// Merging must not overwrite locations that are already set.
	other := NewLabel(0, LocInterior, LocInterior, LocInterior)
	l.Merge(other)
	if l.Location(0, PosLeft) != LocExterior {
		t.Error("merge overwrote an assigned location")
	}
}

func TestLabelIsArea(t *testing.T) {
	area := NewLabel(0, LocBoundary, LocExterior, LocInterior)
	if !area.IsArea() {
		t.Error("label with side locations should be an area label")
	}
	line := NewLabel(0, LocInterior, LocNone, LocNone)
	if line.IsArea() {
		t.Error("label without side locations should not be an area label")
	}
}
