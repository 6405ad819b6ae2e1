package application

import "strings"

// command identifies what a routed text message asks the bot to do
type command int

const (
	cmdNone command = iota
	cmdShowWedding
	cmdShowTravel
	cmdShowBlessingCard
	cmdShowConfirmCard
	cmdShowGiftCard
	cmdStartConfirm
	cmdStartBlessing
	cmdStartGiftSlip
	cmdEditConfirm
	cmdHelp
)

// commandPattern binds one accepted phrasing to its command
type commandPattern struct {
	phrase string
	cmd    command
}

// commandTable is the single place trigger phrases are added. Matching is
// exact on the trimmed text, case-insensitive for the ASCII aliases.
var commandTable = []commandPattern{
	// Static cards
	{phrase: "รายละเอียดงาน", cmd: cmdShowWedding},
	{phrase: "งานแต่ง", cmd: cmdShowWedding},
	{phrase: "wedding", cmd: cmdShowWedding},
	{phrase: "การเดินทาง", cmd: cmdShowTravel},
	{phrase: "แผนที่", cmd: cmdShowTravel},
	{phrase: "travel", cmd: cmdShowTravel},
	{phrase: "map", cmd: cmdShowTravel},
	{phrase: "คำอวยพร", cmd: cmdShowBlessingCard},
	{phrase: "อวยพร", cmd: cmdShowBlessingCard},
	{phrase: "blessing", cmd: cmdShowBlessingCard},
	{phrase: "ยืนยันมาร่วมงาน", cmd: cmdShowConfirmCard},
	{phrase: "ยืนยันการมาร่วมงาน", cmd: cmdShowConfirmCard},
	{phrase: "rsvp", cmd: cmdShowConfirmCard},
	{phrase: "มอบของขวัญ", cmd: cmdShowGiftCard},
	{phrase: "ของขวัญ", cmd: cmdShowGiftCard},
	{phrase: "gift", cmd: cmdShowGiftCard},

	// Flow starts
	{phrase: "ยืนยัน เจอกันแน่นอน", cmd: cmdStartConfirm},
	{phrase: "เขียนคำอวยพร", cmd: cmdStartBlessing},
	{phrase: "ส่งสลิป", cmd: cmdStartGiftSlip},
	{phrase: "แนบสลิป", cmd: cmdStartGiftSlip},
	{phrase: "แก้ไขการยืนยัน", cmd: cmdEditConfirm},
	{phrase: "แก้ไขข้อมูล", cmd: cmdEditConfirm},

	// Menu
	{phrase: "เมนู", cmd: cmdHelp},
	{phrase: "ช่วยเหลือ", cmd: cmdHelp},
	{phrase: "help", cmd: cmdHelp},
	{phrase: "menu", cmd: cmdHelp},
}

// routeCommand resolves trimmed text to a command. Unmatched text yields
// cmdNone, which callers turn into the menu fallback.
func routeCommand(text string) command {
	text = strings.ToLower(text)
	for _, pattern := range commandTable {
		if pattern.phrase == text {
			return pattern.cmd
		}
	}
	return cmdNone
}
