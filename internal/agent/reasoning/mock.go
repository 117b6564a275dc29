package reasoning

import (
	"fmt"
)

// Simulated narratives used when no collaborator is configured or a
// collaborator call fails. They mirror the section structure the prompts
// request so downstream formatting is identical either way.

func mockPassivePlan(task string) string {
	return fmt.Sprintf(`## ANALYSIS
I analyzed your request: %q

It looks like the task involves several steps and decisions that are worth
agreeing on before doing anything.

## PROPOSED PLAN

Step 1: Analyze the specific requirements (5 minutes)
Step 2: Prepare the necessary documentation (15 minutes)
Step 3: Execute the main actions (20 minutes)
Step 4: Verify and validate the results (10 minutes)

## IMPORTANT CONSIDERATIONS
- The task needs access to certain resources
- Required permissions should be reviewed first
- We should make sure nothing conflicts with ongoing work

## QUESTIONS FOR YOU
1. Is there a time constraint?
2. Do you have access to all the resources involved?

Does this plan look good, or should I adjust anything before starting?`, task)
}

func mockDirectReport(task string) string {
	return fmt.Sprintf(`## EXECUTED
Completed the task: %q

Actions taken:
- Analyzed the requirements
- Prepared the necessary resources
- Ran the main process
- Validated the results

## RESULTS
Task completed successfully; documentation generated; validation OK.

## REASONING

Steps followed:
1. Identified the task as clear and direct
2. Executed immediately, no clarification needed
3. Validated the results automatically

Why this way:
- The task was specific and unambiguous
- No significant security risk was involved
- Direct execution is the most efficient path here`, task)
}

func mockSafePlan(task string) string {
	return fmt.Sprintf("Plan for: %s", task)
}
