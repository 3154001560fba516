package engine

import "fmt"

// transcriptionHint biases the transcription vocabulary toward the
// expected speaker and domain.
func transcriptionHint(languageName string) string {
	if languageName == "" {
		languageName = "English"
	}
	return fmt.Sprintf("This is a South African person speaking %s about their professional work experience and skills.", languageName)
}

const profilePromptTemplate = `You are a Senior Technical Recruiter and ATS (Applicant Tracking System) Expert.

INPUT FROM USER: "%s"
%s
TARGET LANGUAGE: %s

CRITICAL INSTRUCTION:
- NEVER use placeholders like [Date], [City], or [Company Name].
- If a specific date, location, or company name is NOT mentioned in the user's story, DO NOT include a line for it.
- Focus on the skills and responsibilities described.
- Format the output clearly using professional headings.

YOUR TASK:
1. ATS OPTIMIZATION: Use high-traffic industry keywords found in the target job description.
   Translate informal experience into professional terminology (e.g., 'selling to people' -> 'Direct Sales & Relationship Management').

2. QUANTIFIABLE RESULTS: Wherever possible, estimate impact (e.g., 'Optimized inventory to reduce waste' or 'Maintained 100%% service availability').

3. STRUCTURE: Create an industry-standard CV layout.
   Even with code-switching, the output must be professional %s.

STRICT MARKDOWN FORMATTING:
# [FULL NAME - REDACTED]

## Professional Summary
(A high-impact summary focusing on years of experience and top-tier skills.)

## Technical & Core Competencies
(A list of skills grouped by 'Operational', 'Management', or 'Technical' categories.)

## Professional Experience & Achievements
(Bullet points using the 'Action + Context + Result' formula.)

## Leadership & Personal Attributes
(Identify 3 psychological strengths demonstrated in the story, framed as workplace assets.)

## Closing Statement
(One affirming sentence positioning the candidate's lived experience as an asset.)`

// buildProfilePrompt embeds the already-redacted narrative in the
// recruiter prompt. jobDescription may be empty.
func buildProfilePrompt(redactedNarrative, targetLanguage, jobDescription string) string {
	jdContext := "No specific job description provided."
	if jobDescription != "" {
		jdContext = "TARGET JOB DESCRIPTION: " + jobDescription
	}
	return fmt.Sprintf(profilePromptTemplate, redactedNarrative, jdContext, targetLanguage, targetLanguage)
}
