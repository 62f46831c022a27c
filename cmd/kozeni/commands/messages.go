package commands

// Prompts.
const (
	promptPrice      = "商品価格(円): "
	promptTendered   = "投入する金額(円): "
	promptPalindrome = "回文判定したい文字列を入力: "
	promptNatural    = "任意の自然数を入力してください: "
)

// Result lines. Format verbs are filled by the session.
const (
	fmtAmountEcho     = "%s円"
	fmtChange         = "お釣り: %d円"
	fmtBreakdownEntry = "%d円: %d 枚"
	msgPalindrome     = "回文です"
	fmtNotPalindrome  = "回文ではないです。結果: %s"
	msgPrime          = "素数です"
	msgNotPrime       = "素数ではないです"
)

// Error lines.
const (
	fmtInvalidAmount     = "%s は金額として無効です。整数を入力してください。"
	fmtInsufficientFunds = "%d 円不足しています。"
	msgTextTooShort      = "無効な値です。2文字以上で入力してください。"
	msgInvalidNumber     = "数値を入力してください"
)
