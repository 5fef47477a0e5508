package runner

import (
	"encoding/json"
	"fmt"
)

// Profile 不同界面使用不同的模拟输出
type Profile string

const (
	ProfileQuiz       Profile = "quiz"
	ProfileEditor     Profile = "editor"
	ProfilePlayground Profile = "playground"
)

func (p Profile) Valid() bool {
	switch p {
	case ProfileQuiz, ProfileEditor, ProfilePlayground:
		return true
	}
	return false
}

const fibonacci = `Fibonacci sequence:
F(0) = 0
F(1) = 1
F(2) = 1
F(3) = 2
F(4) = 3
F(5) = 5
F(6) = 8
F(7) = 13
F(8) = 21
F(9) = 34`

var quizOutputs = map[string]string{
	"python":     "Hello, World!\n",
	"javascript": "Hello, World!\n",
	"html":       "<div>HTML rendered successfully</div>",
}

var editorOutputs = map[string]string{
	"python":     "Hello, World!\nResult: Success\n\nProcess finished with exit code 0",
	"javascript": "Hello, World!\nResult: Success\n\n[Finished in 0.1s]",
	"c":          "Compilation successful.\nHello, World!\n\n[Program exited with code 0]",
	"go":         "Hello, World!\n\n[go run completed successfully]",
	"html":       "HTML rendered in browser preview",
	"css":        "CSS styles applied successfully",
}

var playgroundOutputs = map[string]string{
	"javascript": "> Running JavaScript code...\n\nHello, World!\n\n" + fibonacci + "\n\n✅ Execution completed successfully",
	"typescript": "> Running TypeScript code...\n\nHello, World!\n\n" + fibonacci + "\n\n✅ Execution completed successfully",
	"python":     "> Running Python code...\n\nHello, World!\n\n" + fibonacci + "\n\nPrime numbers up to 20:\n[2, 3, 5, 7, 11, 13, 17, 19]\n\n✅ Process finished with exit code 0",
	"html":       "HTML rendered in preview tab",
	"css":        "CSS styles applied in preview tab",
}

// Output 返回固定的模拟输出，不会执行代码。
// playground 的 json 语言只做语法检查。
func Output(p Profile, language, code string) string {
	switch p {
	case ProfileQuiz:
		if out, ok := quizOutputs[language]; ok {
			return out
		}
		return "Code executed successfully\n"
	case ProfileEditor:
		if out, ok := editorOutputs[language]; ok {
			return out
		}
	case ProfilePlayground:
		if language == "json" {
			var v interface{}
			if err := json.Unmarshal([]byte(code), &v); err != nil {
				return fmt.Sprintf("❌ JSON Syntax Error: %s", err.Error())
			}
			return "✅ Valid JSON format"
		}
		if out, ok := playgroundOutputs[language]; ok {
			return out
		}
	}
	return "Code executed successfully"
}
