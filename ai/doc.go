// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package ai generates document titles with a configurable LLM provider.
//
// The package is built around one capability interface:
//
//   - TitleGenerator: produces a title from OCR text
//
// Three provider variants implement it (openai, ollama, claude), each a thin
// transport wrapper around a single structured-output API call. Everything
// the variants share lives in pure functions: BuildPrompt composes the
// prompt from the settings template fragments, and ExtractTitle validates
// the provider's JSON response and applies the 127-character truncation.
// The variants differ only in how the prompt travels over the wire and how
// the structured output is requested (response_format for OpenAI,
// format=json for Ollama, a forced tool call for Claude).
//
// NewTitleGenerator is the factory: it dispatches on the llm_provider
// setting over a closed, static registry. Unknown provider names and missing
// credentials fail at construction, before any network call.
//
// Generators perform exactly one provider call per GenerateTitle invocation:
// no retries, no fallback to another provider. Transport failures surface as
// *ProviderCallError, an unreachable Ollama host or missing model as
// ErrProviderUnavailable, and a response that does not honor the structured
// output contract as ErrResponseFormat.
//
// The ai/mock sub-package provides test doubles with call counters and
// injectable behavior.
package ai
