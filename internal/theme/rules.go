package theme

const developerRules = `/* Developer Theme Enhancements */
.portfolio-header {
  background: linear-gradient(135deg, var(--persona-bg) 0%, #1a1d3a 100%);
  position: relative;
}

.portfolio-header::after {
  content: '';
  position: absolute;
  top: 0;
  left: 0;
  right: 0;
  bottom: 0;
  background:
    radial-gradient(circle at 20% 80%, rgba(0, 212, 255, 0.1) 0%, transparent 50%),
    radial-gradient(circle at 80% 20%, rgba(124, 58, 237, 0.1) 0%, transparent 50%);
  pointer-events: none;
}

.tech-tag {
  background: var(--persona-primary);
  color: var(--persona-bg);
  border: 1px solid rgba(0, 212, 255, 0.3);
  box-shadow: 0 0 10px rgba(0, 212, 255, 0.2);
}

.project-card:hover {
  border-color: var(--persona-primary);
  box-shadow: 0 8px 32px rgba(0, 212, 255, 0.2);
}

.skill-item:hover {
  box-shadow: 0 0 15px rgba(0, 212, 255, 0.3);
}`

const designerRules = `/* Designer Theme Enhancements */
.portfolio-header {
  background: linear-gradient(135deg, var(--persona-primary) 0%, var(--persona-secondary) 50%, var(--persona-accent) 100%);
  color: white;
}

.name, .title {
  color: white;
  text-shadow: 2px 2px 4px rgba(0, 0, 0, 0.3);
}

.section-title {
  background: linear-gradient(135deg, var(--persona-primary), var(--persona-accent));
  -webkit-background-clip: text;
  -webkit-text-fill-color: transparent;
  background-clip: text;
}

.project-card, .skill-category, .leadership-card {
  background: linear-gradient(135deg, var(--persona-surface) 0%, rgba(255, 107, 53, 0.05) 100%);
  border: 2px solid transparent;
  background-clip: padding-box;
}

.project-card:hover {
  transform: translateY(-8px) rotate(1deg);
  box-shadow: 0 20px 40px rgba(255, 107, 53, 0.2);
}

.tech-tag {
  background: linear-gradient(45deg, var(--persona-primary), var(--persona-accent));
  color: white;
  transform: skew(-5deg);
}`

const managerRules = `/* Manager Theme Enhancements */
.portfolio-header {
  background: linear-gradient(135deg, var(--persona-bg) 0%, var(--persona-secondary) 100%);
  border-bottom: 3px solid var(--persona-primary);
}

.section-title::after {
  background: linear-gradient(90deg, var(--persona-primary), var(--persona-secondary));
}

.project-card, .skill-category, .leadership-card {
  border-left: 4px solid var(--persona-primary);
  background: var(--persona-surface);
}

.experience-item::before, .education-item::before {
  background: var(--persona-primary);
  border: 3px solid var(--persona-surface);
  box-shadow: 0 0 0 2px var(--persona-primary);
}

.tech-tag {
  background: var(--persona-primary);
  color: white;
  border-radius: 2px;
  text-transform: uppercase;
  font-size: 11px;
  letter-spacing: 0.5px;
}

.contact-link:hover {
  background: var(--persona-primary);
  color: white;
  border-radius: var(--persona-radius);
}`

const entrepreneurRules = `/* Entrepreneur Theme Enhancements */
.portfolio-header {
  background: radial-gradient(ellipse at center, var(--persona-primary) 0%, var(--persona-secondary) 50%, var(--persona-accent) 100%);
  color: white;
  position: relative;
  overflow: hidden;
}

.portfolio-header::before {
  content: '';
  position: absolute;
  top: -50%;
  left: -50%;
  width: 200%;
  height: 200%;
  background: repeating-linear-gradient(
    45deg,
    transparent,
    transparent 2px,
    rgba(255, 255, 255, 0.05) 2px,
    rgba(255, 255, 255, 0.05) 4px
  );
  animation: entrepreneurPattern 20s linear infinite;
}

@keyframes entrepreneurPattern {
  0% { transform: translate(0, 0); }
  100% { transform: translate(50px, 50px); }
}

.name, .title {
  color: white;
  text-shadow: 3px 3px 6px rgba(0, 0, 0, 0.4);
}

.project-card:hover {
  transform: translateY(-6px) scale(1.03);
  box-shadow: 0 15px 35px rgba(245, 158, 11, 0.3);
}

.tech-tag {
  background: linear-gradient(135deg, var(--persona-primary) 0%, var(--persona-secondary) 100%);
  color: white;
  border-radius: 20px;
  position: relative;
  overflow: hidden;
}

.tech-tag::before {
  content: '';
  position: absolute;
  top: 0;
  left: -100%;
  width: 100%;
  height: 100%;
  background: linear-gradient(90deg, transparent, rgba(255, 255, 255, 0.2), transparent);
  transition: left 0.5s;
}

.tech-tag:hover::before {
  left: 100%;
}`

const creativeRules = `/* Creative Theme Enhancements */
.portfolio-header {
  background: conic-gradient(from 45deg, var(--persona-primary) 0deg, var(--persona-secondary) 120deg, var(--persona-accent) 240deg, var(--persona-primary) 360deg);
  color: white;
  position: relative;
}

.name {
  color: white;
  text-shadow: 2px 2px 0px var(--persona-accent), 4px 4px 0px var(--persona-secondary);
  transform: rotate(-1deg);
}

.title {
  color: white;
  transform: rotate(0.5deg);
}

.section-title {
  transform: rotate(-0.5deg);
  background: linear-gradient(135deg, var(--persona-primary), var(--persona-secondary), var(--persona-accent));
  -webkit-background-clip: text;
  -webkit-text-fill-color: transparent;
  background-clip: text;
}

.project-card, .skill-category, .leadership-card {
  transform: rotate(0.5deg);
  background: linear-gradient(135deg, var(--persona-surface) 0%, rgba(236, 72, 153, 0.05) 100%);
  border-radius: 15px 5px 15px 5px;
}

.project-card:nth-child(even) {
  transform: rotate(-0.5deg);
  border-radius: 5px 15px 5px 15px;
}

.project-card:hover {
  transform: rotate(0deg) scale(1.05);
  box-shadow: 0 10px 30px rgba(236, 72, 153, 0.3);
}

.tech-tag {
  background: var(--persona-primary);
  color: white;
  border-radius: 15px 3px 15px 3px;
  transform: rotate(-1deg);
}

.skill-item {
  border-radius: 8px 2px 8px 2px;
  transform: rotate(0.5deg);
}

.skill-item:nth-child(even) {
  transform: rotate(-0.5deg);
}`

const studentRules = `/* Student Theme Enhancements */
.portfolio-header {
  background: linear-gradient(135deg, var(--persona-bg) 0%, var(--persona-surface) 50%, var(--persona-primary) 100%);
  position: relative;
}

.portfolio-header::after {
  content: '📚 🎓 💡 🚀';
  position: absolute;
  top: 20px;
  right: 20px;
  font-size: 1.5rem;
  opacity: 0.3;
  animation: studentFloat 6s ease-in-out infinite;
}

@keyframes studentFloat {
  0%, 100% { transform: translateY(0px); }
  50% { transform: translateY(-10px); }
}

.section-title {
  color: var(--persona-primary);
  position: relative;
}

.section-title::before {
  content: '✨';
  position: absolute;
  left: -30px;
  animation: sparkle 2s ease-in-out infinite;
}

@keyframes sparkle {
  0%, 100% { opacity: 0.5; transform: scale(1); }
  50% { opacity: 1; transform: scale(1.2); }
}

.project-card, .skill-category, .leadership-card {
  border: 2px dashed var(--persona-primary);
  background: var(--persona-surface);
  border-radius: 15px;
}

.project-card:hover {
  border-style: solid;
  transform: translateY(-4px);
  box-shadow: 0 8px 20px rgba(16, 185, 129, 0.2);
}

.tech-tag {
  background: var(--persona-primary);
  color: white;
  border-radius: 12px;
  position: relative;
}

.experience-item::before, .education-item::before {
  background: var(--persona-primary);
  border: 2px solid white;
  box-shadow: 0 0 0 2px var(--persona-primary);
}`
