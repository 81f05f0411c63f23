// Package openai implements response adaptation against OpenAI-compatible
// chat APIs such as Ollama, LocalAI, and vLLM.
package openai
