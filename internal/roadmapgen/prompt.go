package roadmapgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/eduvoyager/internal/assessment"
	"github.com/abhisek/eduvoyager/internal/learner"
	"github.com/abhisek/eduvoyager/internal/roadmap"
)

const roadmapSystemPrompt = `You are an expert career counselor EduVoyager. You map learners onto the NSQF (National Skills Qualifications Framework) and produce step-by-step learning roadmaps.

SCORING LOGIC:
- Beginners/Hobbyists -> NSQF Level 1-4.
- Intermediate/Undergrads -> NSQF Level 5-7.
- Advanced/Professionals -> NSQF Level 8-10.`

func buildRoadmapUserMessage(profile learner.Profile, domain string, answers []assessment.Answer) string {
	designation := profile.Designation
	if designation == "" {
		designation = "Learner"
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("User Profile: %s, Goal: %s.\n\n", designation, domain))
	b.WriteString(fmt.Sprintf("Create a JSON roadmap tailored to the domain %q.\n", domain))
	b.WriteString("- 'targetNsqfLevel': Determine based on answers.\n")
	b.WriteString("- 'learningObjectives': 3 bullet points on what they will achieve.\n")
	b.WriteString("- 'softSkills': Identify 5 CRITICAL soft skills and behavioral qualities required for this role from a RECRUITMENT & PLACEMENT perspective.\n")
	b.WriteString("  MANDATORY: You MUST include 'Effective Communication' and 'Leadership' (or Teamwork) if relevant.\n")
	b.WriteString("  Other examples: Emotional Intelligence, Adaptability, Problem Solving, Presentation Skills.\n")
	b.WriteString("  For EACH soft skill, provide:\n")
	b.WriteString("   1. 'name': The skill name (e.g. \"Leadership & Team Management\", \"Professional Communication\").\n")
	b.WriteString(fmt.Sprintf("   2. 'description': A brief explanation of why recruiters value this skill for a %s in %s.\n", designation, domain))
	b.WriteString("   3. 'resources': Provide exactly 4 resources.\n")
	b.WriteString("      - 2 MUST be high-quality FREE resources (e.g., YouTube, Blogs).\n")
	b.WriteString("      - 2 MUST be top-rated PAID resources (e.g., Coursera, Udemy, Books) to give the user premium options.\n")
	b.WriteString("      Ensure 'isPaid' is correctly set to true or false for each.\n")
	b.WriteString("- 'decisionPrompts': 2-3 questions for self-reflection.\n")
	b.WriteString("- 'steps': A step-by-step technical learning path.\n\n")

	profileJSON, _ := json.Marshal(profile)
	answersJSON, _ := json.Marshal(answers)
	b.WriteString(fmt.Sprintf("User Profile: %s\n", profileJSON))
	b.WriteString(fmt.Sprintf("Assessment Answers: %s\n\n", answersJSON))
	b.WriteString("Generate the roadmap JSON.")

	return b.String()
}

func buildNextLevelUserMessage(current *roadmap.Roadmap, nextFocus string, nextLevel int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Context: User has completed an NSQF Level %d roadmap in %q.\n", current.TargetNSQFLevel, current.Domain))
	b.WriteString(fmt.Sprintf("They now want to focus on: %q.\n\n", nextFocus))
	b.WriteString(fmt.Sprintf("Task: Create a follow-up roadmap for NSQF Level %d (or higher if appropriate).\n", nextLevel))
	b.WriteString(fmt.Sprintf("Title should reflect the next stage of learning (e.g., \"Advanced %s\" or \"Mastering %s\").\n\n", current.Domain, nextFocus))
	b.WriteString(fmt.Sprintf("Current Domain: %s\n", current.Domain))
	b.WriteString(fmt.Sprintf("Next Focus: %s\n\n", nextFocus))
	b.WriteString("Structure the response exactly like the previous roadmap JSON.\n")
	b.WriteString("Include 5 advanced 'softSkills' crucial for CAREER ADVANCEMENT and PLACEMENT at this higher level.\n")
	b.WriteString("Examples: Strategic Leadership, Conflict Resolution, Negotiation, Public Speaking.\n")
	b.WriteString("For each soft skill, provide 4 specific learning resources: 2 FREE and 2 PAID options. Ensure 'isPaid' flag is accurate.")

	return b.String()
}
