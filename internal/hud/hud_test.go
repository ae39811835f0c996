package hud

import "testing"

func TestFormat(t *testing.T) {
	v := Values{Lives: 3, Score: 7, Minutes: 1, Seconds: 5, HighScore: 42}
	tests := []struct {
		field Field
		want  string
	}{
		{Lives, "Lives: 3"},
		{Score, "Points: 7"},
		{Time, "01:05"},
		{HighScore, "High Score: 042"},
	}
	for _, tt := range tests {
		if got := Format(tt.field, v); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestFormatTimeOverflow(t *testing.T) {
	if got := Format(Time, Values{Minutes: 99, Seconds: 59}); got != "99:59" {
		t.Errorf("99:59 formatted as %q", got)
	}
	if got := Format(Time, Values{Minutes: 100}); got != "just stop" {
		t.Errorf("100 minutes formatted as %q", got)
	}
}

func TestAnchors(t *testing.T) {
	want := map[Field]float64{Lives: 0, Score: 0.2, Time: 0.5, HighScore: 0.75}
	for f, a := range want {
		if f.Anchor() != a {
			t.Errorf("%v anchor = %v, want %v", f, f.Anchor(), a)
		}
	}
}

func TestCacheRebuildsOnlyOnChange(t *testing.T) {
	calls := map[Field]int{}
	c := NewCache(func(f Field, text string) string {
		calls[f]++
		return "<" + text + ">"
	})

	v := Values{Lives: 3}
	if changed := c.Update(v); len(changed) != len(Fields) {
		t.Fatalf("first update rebuilt %d fields, want %d", len(changed), len(Fields))
	}
	if changed := c.Update(v); len(changed) != 0 {
		t.Errorf("identical update rebuilt %v", changed)
	}

	v.Score = 5
	changed := c.Update(v)
	if len(changed) != 1 || changed[0] != Score {
		t.Errorf("score change rebuilt %v, want [score]", changed)
	}
	if calls[Score] != 2 || calls[Lives] != 1 {
		t.Errorf("build calls = %v", calls)
	}
	if got := c.Item(Score).Value; got != "<Points: 5>" {
		t.Errorf("cached value = %q", got)
	}
	if c.Builds() != len(Fields)+1 {
		t.Errorf("Builds() = %d, want %d", c.Builds(), len(Fields)+1)
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache[int](nil)
	c.Refresh(Lives, "Lives: 3")
	if c.Refresh(Lives, "Lives: 3") {
		t.Error("unchanged text should not rebuild")
	}
	c.Invalidate()
	if !c.Refresh(Lives, "Lives: 3") {
		t.Error("invalidated field should rebuild")
	}
	if c.Refresh(Field(99), "x") {
		t.Error("unknown field should be ignored")
	}
}

func TestSinkFunc(t *testing.T) {
	var got string
	var s Sink = SinkFunc(func(f Field, text string) { got = f.String() + "=" + text })
	s.Refresh(Score, "Points: 1")
	if got != "score=Points: 1" {
		t.Errorf("got %q", got)
	}
}
