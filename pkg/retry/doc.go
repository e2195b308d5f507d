// Package retry runs an operation until it succeeds or fails with an error
// that should not be retried.
//
// The annotation prompts use it with MaxAttempts set to 0, which re-prompts
// for as long as the annotator keeps entering invalid input:
//
//	index, err := retry.DoWithResult(func() (int, error) {
//		line, err := console.Prompt("Enter the image id -> ")
//		if err != nil {
//			return 0, err
//		}
//		return annotator.ParseCursor(line)
//	}, &retry.Config{
//		RetryIf: retry.DefaultRetryIf,
//		OnRetry: func(attempt int, err error) { console.Println(err) },
//	})
//
// Console read failures such as io.EOF are not retryable and end the loop.
package retry
