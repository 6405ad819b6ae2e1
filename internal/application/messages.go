package application

// User-facing copy. Guests chat in Thai; the command table also accepts a few
// ASCII aliases for the same actions.
const (
	msgAskName          = "ยินดีมากค่ะ 💕 ขอทราบชื่อ-นามสกุลของคุณค่ะ"
	msgNameTooShort     = "ชื่อสั้นเกินไปค่ะ กรุณาพิมพ์ชื่อ-นามสกุลอีกครั้งค่ะ"
	msgAskGuests        = "มากันทั้งหมดกี่ท่านคะ (ตอบเป็นตัวเลข 1-%d)"
	msgGuestsInvalid    = "กรุณาระบุจำนวนเป็นตัวเลข 1-%d ค่ะ"
	msgConfirmed        = "บันทึกเรียบร้อยค่ะ 🎉\nคุณ %s จำนวน %d ท่าน\nแล้วพบกันในงานนะคะ"
	msgAlreadyConfirmed = "คุณได้ยืนยันไว้แล้วค่ะ\nชื่อ %s จำนวน %d ท่าน (ล่าสุดเมื่อ %s)\nหากต้องการแก้ไข พิมพ์ \"แก้ไขการยืนยัน\" ได้เลยค่ะ"

	msgAskBlessing      = "พิมพ์คำอวยพรถึงบ่าวสาวได้เลยค่ะ 💐"
	msgBlessingTooShort = "คำอวยพรสั้นเกินไปค่ะ ลองพิมพ์อีกครั้งนะคะ"
	msgBlessingSaved    = "ได้รับคำอวยพรแล้ว ขอบคุณมากค่ะ 💕"

	msgAskGiftSlip     = "แนบรูปภาพหรือไฟล์สลิปการโอนได้เลยค่ะ"
	msgGiftSlipWaiting = "รบกวนแนบเป็นรูปภาพหรือไฟล์สลิปค่ะ"
	msgGiftSlipSaved   = "ได้รับสลิปเรียบร้อยแล้ว ขอบคุณมากค่ะ 🙏"

	msgMenu = "พิมพ์ข้อความเหล่านี้ได้เลยค่ะ\n· รายละเอียดงาน\n· การเดินทาง\n· ยืนยันมาร่วมงาน\n· เขียนคำอวยพร\n· มอบของขวัญ"

	msgContentUnavailable = "ขออภัยค่ะ ตอนนี้ยังแสดงข้อมูลส่วนนี้ไม่ได้ กรุณาลองใหม่อีกครั้งค่ะ"
	msgSystemFailure      = "ขออภัยค่ะ ระบบขัดข้องชั่วคราว กรุณาลองใหม่อีกครั้งค่ะ"
	msgUnidentifiableUser = "ขออภัยค่ะ ไม่สามารถระบุผู้ใช้ได้ กรุณาทักมาทางแชทส่วนตัวค่ะ"

	msgWelcome      = "สวัสดีค่ะ ยินดีต้อนรับสู่งานแต่งของเราค่ะ 💒"
	msgWelcomeNamed = "สวัสดีค่ะคุณ %s ยินดีต้อนรับสู่งานแต่งของเราค่ะ 💒"
)

// Alt texts shown on devices that cannot render flex cards
const (
	altWedding  = "รายละเอียดงานแต่งงาน"
	altTravel   = "การเดินทางมางาน"
	altBlessing = "ส่งคำอวยพรถึงบ่าวสาว"
	altConfirm  = "ยืนยันการมาร่วมงาน"
	altGift     = "มอบของขวัญให้บ่าวสาว"
)

// Card lookup keys understood by the card source
const (
	cardKeyWedding        = "wedding"
	cardKeyWeddingDetails = "wedding_details"
	cardKeyMain           = "main"
	cardKeyTravel         = "travel"
	cardKeyBlessing       = "blessing"
	cardKeyConfirm        = "confirm"
	cardKeyGift           = "gift"
)

// weddingCardKeys is the prioritized fallback chain for the main invitation
// card. Deployments have shipped the payload under any of these names.
var weddingCardKeys = []string{cardKeyWedding, cardKeyWeddingDetails, cardKeyMain}
