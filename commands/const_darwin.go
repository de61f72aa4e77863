package commands

const (
	_etc = "/usr/local/etc/com.github.sheetdrive"

	DEFAULT_CREDENTIALS = _etc + "/service-account.json"
)
