package qwen

import "time"

// DashScope OpenAI-compatible mode.
const (
	DefaultModel   = "qwen2.5-7b-instruct"
	DefaultBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"
	DefaultTimeout = 60 * time.Second
)
