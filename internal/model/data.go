package model

// Skill levels and the progress they map to.
const (
	LevelExpert   = "Expert"
	LevelAdvanced = "Advanced"
)

// LevelProgress maps a proficiency level to a progress bar fill.
func LevelProgress(level string) float64 {
	switch level {
	case LevelExpert:
		return 0.95
	case LevelAdvanced:
		return 0.80
	}
	return 0.5
}

// DefaultContent returns the built-in portfolio.
func DefaultContent() Content {
	skill := func(name, category, level string) Skill {
		return Skill{Name: name, Category: category, Level: level, Progress: LevelProgress(level)}
	}

	return Content{
		Profile: Profile{
			Name:    "V Vier",
			Handle:  "x0VIER",
			Title:   "IT Specialist & Automation Expert",
			Tagline: "Certified IT Help Desk Specialist with expertise in Python automation, AWS cloud services, and system administration. Passionate about solving technical challenges through innovative automation solutions.",
			About: []string{
				"As a Certified IT Specialist with hands-on experience in help desk operations, I specialize in solving complex technical issues and supporting users across diverse environments.",
				"My passion lies in automation and cloud technologies, with extensive experience in Python scripting, AWS services, and system administration. I've developed 99+ repositories covering everything from basic automation to advanced cloud infrastructure.",
			},
			Badges:    []string{"Python Expert", "AWS Certified", "IT Support", "Automation", "Cloud Architecture"},
			GitHubURL: "https://github.com/x0VIER",
			Email:     "contact@x0vier.dev",
			Pitch:     "Ready to collaborate on your next project? Let's discuss how my expertise in automation, cloud services, and IT support can help solve your technical challenges.",
		},
		Projects: []Project{
			{ID: 1, Name: "Python Automation Suite", Description: "IT automation scripts for file organization, log analysis, and system health checks", Language: "Python", Category: "Automation", Featured: true},
			{ID: 2, Name: "AWS Cloud Infrastructure", Description: "Complete AWS solutions including S3, EC2, Lambda, and CloudFormation IaC", Language: "CloudFormation", Category: "Cloud", Featured: true},
			{ID: 3, Name: "Cybersecurity Scanner", Description: "Vulnerability scanning and analysis using Nmap and OpenVAS", Language: "Python", Category: "Security", Featured: true},
			{ID: 4, Name: "Data Analysis Pipeline", Description: "Python data analysis using Pandas, Matplotlib, and Seaborn", Language: "Python", Category: "Data"},
			{ID: 5, Name: "PowerShell Automation", Description: "Windows automation for user management and system administration", Language: "PowerShell", Category: "Automation"},
			{ID: 6, Name: "Docker Containerization", Description: "Container orchestration and management solutions", Language: "Docker", Category: "DevOps"},
		},
		Skills: []Skill{
			skill("Python", "Programming", LevelExpert),
			skill("JavaScript", "Programming", LevelAdvanced),
			skill("PowerShell", "Programming", LevelAdvanced),
			skill("AWS Services", "Cloud & DevOps", LevelExpert),
			skill("Docker", "Cloud & DevOps", LevelAdvanced),
			skill("Linux Admin", "Cloud & DevOps", LevelAdvanced),
			skill("Vulnerability Scanning", "Security & IT", LevelExpert),
			skill("IT Support", "Security & IT", LevelExpert),
			skill("Network Security", "Security & IT", LevelAdvanced),
		},
		Files: []string{"about.txt", "skills.json", "projects/", "contact.md"},
	}
}
