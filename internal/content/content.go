// Package content holds the static portfolio data: profile, statistics,
// visitor series, skills and the projects a fresh session starts with.
package content

import "portfolio-cli/internal/model"

func Profile() model.Profile {
	return model.Profile{
		Name:    "Jinto Johnson C",
		Role:    "AI/ML Engineer",
		Tagline: "I specialize in developing cutting-edge machine learning models and deploying scalable AI solutions.",
		About: "I'm an AI/ML engineer with expertise in deep learning, computer vision, and natural language processing. " +
			"My work focuses on building state-of-the-art models, optimizing neural architectures, and deploying scalable " +
			"ML systems in production environments.",
		Education:   "Computer Science & AI Specialization",
		FocusAreas:  "Deep Learning • Vision • NLP",
		LinkedInURL: "https://www.linkedin.com/in/jinto-johnson-c-bb11b1271",
		Skills:      Skills(),
	}
}

func Stats() model.Stats {
	return model.Stats{
		ModelsDeployed: 15,
		Datasets:       28,
		Accuracy:       94.5,
		Publications:   3,
	}
}

func Visitors() []model.VisitorPoint {
	return []model.VisitorPoint{
		{Day: "Mon", Visitors: 800},
		{Day: "Tue", Visitors: 1200},
		{Day: "Wed", Visitors: 1600},
		{Day: "Thu", Visitors: 900},
		{Day: "Fri", Visitors: 2000},
		{Day: "Sat", Visitors: 1400},
		{Day: "Sun", Visitors: 1558},
	}
}

func Skills() []string {
	return []string{
		"PyTorch • TensorFlow",
		"Computer Vision • NLP",
		"MLOps • Docker",
		"Transformers • BERT",
	}
}

func InitialProjects() []model.Project {
	return []model.Project{
		{
			ID:    1,
			Title: "Neural Style Transfer Engine",
			Desc:  "Real-time artistic style transfer using CNNs with TensorFlow.js, deployed as web app",
			Tags:  []string{"Deep Learning", "CNN", "TensorFlow.js"},
			Live:  model.LinkPlaceholder,
			Repo:  model.LinkPlaceholder,
		},
		{
			ID:    2,
			Title: "Sentiment Analysis API",
			Desc:  "NLP-based sentiment classifier using BERT, FastAPI backend with 95% accuracy",
			Tags:  []string{"NLP", "BERT", "FastAPI"},
			Live:  model.LinkPlaceholder,
			Repo:  model.LinkPlaceholder,
		},
		{
			ID:    3,
			Title: "Computer Vision Object Detector",
			Desc:  "YOLOv8-based real-time object detection system with custom dataset training",
			Tags:  []string{"Computer Vision", "YOLO", "PyTorch"},
			Live:  model.LinkPlaceholder,
			Repo:  model.LinkPlaceholder,
		},
	}
}

// AboutMarkdown renders the profile as markdown for the About view.
func AboutMarkdown(p model.Profile) string {
	return "# About Me\n\n" + p.About + "\n\n" +
		"## Education\n\n" + p.Education + "\n\n" +
		"## Focus Areas\n\n" + p.FocusAreas + "\n"
}
