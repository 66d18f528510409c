package render

import "strings"

// extractPythonObject extracts a function, class or method from Python
// source. Supported forms: "function_name", "ClassName" and
// "ClassName.method_name".
func extractPythonObject(content, pyobject string) (string, bool) {
	lines := strings.Split(content, "\n")

	if class, method, found := strings.Cut(pyobject, "."); found {
		classStart, classEnd, ok := findPythonObjectRange(lines, class, 0)
		if !ok {
			return "", false
		}
		classLines := lines[classStart:classEnd]
		methodStart, methodEnd, ok := findPythonObjectRange(classLines, method, 1)
		if !ok {
			return "", false
		}
		return strings.Join(classLines[methodStart:methodEnd], "\n"), true
	}

	start, end, ok := findPythonObjectRange(lines, pyobject, 0)
	if !ok {
		return "", false
	}
	return strings.Join(lines[start:end], "\n"), true
}

// findPythonObjectRange locates the [start, end) line range of a def or
// class statement. minIndent is the minimum indentation level to accept
// (0 for top-level objects, 1 for methods inside a class). The object
// ends at the next non-blank, non-comment line at indentation less than
// or equal to the definition's own, decorators excepted.
func findPythonObjectRange(lines []string, name string, minIndent int) (int, int, bool) {
	defPattern := "def " + name + "("
	classPattern := "class " + name + ":"
	classParenPattern := "class " + name + "("

	start := -1
	startIndent := 0

	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		indent := len(line) - len(trimmed)

		if strings.HasPrefix(trimmed, defPattern) ||
			strings.HasPrefix(trimmed, classPattern) ||
			strings.HasPrefix(trimmed, classParenPattern) {
			if indent/4 >= minIndent {
				start = i
				startIndent = indent
				break
			}
		}
	}
	if start < 0 {
		return 0, 0, false
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		indent := len(lines[i]) - len(strings.TrimLeft(lines[i], " \t"))
		if indent <= startIndent && !strings.HasPrefix(trimmed, "@") {
			end = i
			break
		}
	}

	// Trim trailing blank lines.
	for end > start+1 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	return start, end, true
}
