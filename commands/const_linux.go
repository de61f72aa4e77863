package commands

const (
	_etc = "/usr/local/etc/sheetdrive"

	DEFAULT_CREDENTIALS = _etc + "/service-account.json"
)
