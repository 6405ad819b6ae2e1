package application

import "testing"

// TestRouteCommand_KnownPhrases tests every trigger phrase in the command table
func TestRouteCommand_KnownPhrases(t *testing.T) {
	cases := []struct {
		text     string
		expected command
	}{
		{"รายละเอียดงาน", cmdShowWedding},
		{"งานแต่ง", cmdShowWedding},
		{"wedding", cmdShowWedding},
		{"การเดินทาง", cmdShowTravel},
		{"แผนที่", cmdShowTravel},
		{"travel", cmdShowTravel},
		{"map", cmdShowTravel},
		{"คำอวยพร", cmdShowBlessingCard},
		{"อวยพร", cmdShowBlessingCard},
		{"blessing", cmdShowBlessingCard},
		{"ยืนยันมาร่วมงาน", cmdShowConfirmCard},
		{"ยืนยันการมาร่วมงาน", cmdShowConfirmCard},
		{"rsvp", cmdShowConfirmCard},
		{"มอบของขวัญ", cmdShowGiftCard},
		{"ของขวัญ", cmdShowGiftCard},
		{"gift", cmdShowGiftCard},
		{"ยืนยัน เจอกันแน่นอน", cmdStartConfirm},
		{"เขียนคำอวยพร", cmdStartBlessing},
		{"ส่งสลิป", cmdStartGiftSlip},
		{"แนบสลิป", cmdStartGiftSlip},
		{"แก้ไขการยืนยัน", cmdEditConfirm},
		{"แก้ไขข้อมูล", cmdEditConfirm},
		{"เมนู", cmdHelp},
		{"ช่วยเหลือ", cmdHelp},
		{"help", cmdHelp},
		{"menu", cmdHelp},
	}

	for _, c := range cases {
		if got := routeCommand(c.text); got != c.expected {
			t.Errorf("routeCommand(%q): expected %d, got %d", c.text, c.expected, got)
		}
	}
}

// TestRouteCommand_CaseInsensitiveASCII tests that the ASCII aliases match in
// any letter case
func TestRouteCommand_CaseInsensitiveASCII(t *testing.T) {
	cases := []struct {
		text     string
		expected command
	}{
		{"RSVP", cmdShowConfirmCard},
		{"Wedding", cmdShowWedding},
		{"MENU", cmdHelp},
		{"Help", cmdHelp},
		{"Map", cmdShowTravel},
	}

	for _, c := range cases {
		if got := routeCommand(c.text); got != c.expected {
			t.Errorf("routeCommand(%q): expected %d, got %d", c.text, c.expected, got)
		}
	}
}

// TestRouteCommand_UnmatchedTextYieldsNone tests that matching is exact on the
// whole text, so prefixes and superstrings fall through to cmdNone
func TestRouteCommand_UnmatchedTextYieldsNone(t *testing.T) {
	unmatched := []string{
		"",
		"สวัสดีครับ",
		"ยืนยัน",
		"เมนูอาหาร",
		"รายละเอียด",
		"ขอ รายละเอียดงาน หน่อย",
	}

	for _, text := range unmatched {
		if got := routeCommand(text); got != cmdNone {
			t.Errorf("routeCommand(%q): expected cmdNone, got %d", text, got)
		}
	}
}
