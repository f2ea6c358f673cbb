package technique

import (
	"strconv"
	"strings"
)

// DefaultMotivation is appended by EmotionPrompt when no phrase is supplied.
const DefaultMotivation = "This is very important to my career"

// DefaultApproaches is the number of reasoning paths SelfConsistencyPrompt asks for
// when the caller passes a non-positive count.
const DefaultApproaches = 3

// Example is one input/output demonstration for FewShotPrompt.
type Example struct {
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`
}

// DefaultExamples returns the built-in coding examples used when few-shot is
// selected without caller supplied pairs.
func DefaultExamples() []Example {
	return []Example{
		{
			Input:  "Write a function to add two numbers",
			Output: "def add(a, b):\n    return a + b",
		},
		{
			Input:  "Write a function to multiply two numbers",
			Output: "def multiply(a, b):\n    return a * b",
		},
	}
}

// ZeroShotPrompt returns the task unchanged.
func ZeroShotPrompt(task string) string {
	return task
}

// FewShotPrompt renders the task followed by numbered examples and a
// completion cue.
func FewShotPrompt(task string, examples []Example) string {
	var b strings.Builder
	b.WriteString(task)
	b.WriteString("\n\nExamples:\n")
	for i, ex := range examples {
		b.WriteString("\nExample ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(":\n")
		b.WriteString("Input: ")
		b.WriteString(ex.Input)
		b.WriteString("\n")
		b.WriteString("Output: ")
		b.WriteString(ex.Output)
		b.WriteString("\n")
	}
	b.WriteString("\nNow complete the following:\n")
	return b.String()
}

const chainOfThoughtScaffold = `

Let's approach this step-by-step:
1. First, identify the key information
2. Then, work through the logic
3. Finally, provide the answer

Think through this carefully and show your reasoning:`

// ChainOfThoughtPrompt appends the three step reasoning scaffold.
func ChainOfThoughtPrompt(problem string) string {
	return problem + chainOfThoughtScaffold
}

// RoleBasedPrompt opens with a persona sentence, then optional context, then
// the task.
func RoleBasedPrompt(role, task, context string) string {
	prompt := "You are a " + role + "."
	if context != "" {
		prompt += " " + context
	}
	return prompt + "\n\n" + task
}

// StructuredPrompt asks for the response in the given literal format and
// ends with a "Response:" cue.
func StructuredPrompt(task, format string) string {
	return task + "\n\nProvide your response in the following format:\n" + format + "\n\nResponse:"
}

// SelfConsistencyPrompt asks for n independent reasoning paths and a
// reconciliation. Non-positive n means DefaultApproaches.
func SelfConsistencyPrompt(problem string, n int) string {
	if n <= 0 {
		n = DefaultApproaches
	}
	return problem + "\n\nSolve this problem using " + strconv.Itoa(n) + ` different approaches or reasoning paths.
For each approach:
1. Explain your reasoning
2. Show your work
3. State your answer

Then compare the answers to find the most consistent solution.`
}

// EmotionPrompt appends a motivation phrase and a request for a thorough
// answer. An empty motivation means DefaultMotivation.
func EmotionPrompt(task, motivation string) string {
	if motivation == "" {
		motivation = DefaultMotivation
	}
	return task + "\n\n" + motivation + ". Please give this your full attention and provide a thorough, high-quality response."
}

// InstructionBreakdownPrompt renders a task header followed by an optional
// bulleted constraints block and an optional numbered steps block.
func InstructionBreakdownPrompt(task string, constraints, steps []string) string {
	var b strings.Builder
	b.WriteString("Task: ")
	b.WriteString(task)
	b.WriteString("\n")

	if len(constraints) > 0 {
		b.WriteString("\nConstraints:\n")
		for _, c := range constraints {
			b.WriteString("- ")
			b.WriteString(c)
			b.WriteString("\n")
		}
	}

	if len(steps) > 0 {
		b.WriteString("\nFollow these steps:\n")
		for i, s := range steps {
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteString(". ")
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ContextEnrichedPrompt puts the context block ahead of the task.
func ContextEnrichedPrompt(task, context string) string {
	return "Context:\n" + context + "\n\nBased on the context above, " + task
}

// MetaPrompt asks the model to design an optimal prompt for a task type.
func MetaPrompt(taskType, task string) string {
	return "Create an optimal prompt structure for the following type of task: " + taskType + `

The specific task is: ` + task + `

Design a prompt that:
1. Clearly defines the objective
2. Provides necessary context
3. Specifies the desired output format
4. Includes relevant constraints

Optimal Prompt:`
}
