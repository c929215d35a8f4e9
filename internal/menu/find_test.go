package menu

import "testing"

func TestFindResolvesTitles(t *testing.T) {
	s := buildSample(t, nil)
	cases := []struct {
		query string
		want  *Item
	}{
		{"options", s.options},
		{"  PWM ", s.pwm},
		{"opt", s.options},
		{"hrm", s.hiArm},
		{"Options/back", s.back},
		{"options / lo", s.loArm},
	}
	for _, tc := range cases {
		got, ok := s.graph.Find(tc.query)
		if !ok {
			t.Fatalf("Find(%q) found nothing", tc.query)
		}
		if got != tc.want {
			t.Fatalf("Find(%q) = %q, want %q", tc.query, got.Title, tc.want.Title)
		}
	}
}

func TestFindMisses(t *testing.T) {
	s := buildSample(t, nil)
	for _, query := range []string{"", "   ", "zzz", "Test/Back", "Options/zzz"} {
		if item, ok := s.graph.Find(query); ok {
			t.Fatalf("Find(%q) unexpectedly matched %q", query, item.Title)
		}
	}
}

func TestFindPrefersEarlierDeclaration(t *testing.T) {
	s := buildSample(t, nil)
	got, ok := s.graph.Find("back")
	if !ok || got != s.back {
		t.Fatalf("expected first Back to win, got %v", got)
	}
}
