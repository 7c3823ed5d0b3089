package types

const DEFAULT_APPID = "wayfarer"

const NO_PAGINATION = 0

const (
	LANGUAGE_EN_KEY = "en"
	LANGUAGE_CN_KEY = "zh-CN"
)
